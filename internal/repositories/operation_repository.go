package repositories

import (
	"time"

	"github.com/gyKa/commission-calculator/internal/models"
	"github.com/gyKa/commission-calculator/internal/utils"
)

// OperationRepository stores processed operations in ingestion order and
// answers the retrospective weekly-withdrawal query that decides whether a
// withdrawal still sits inside the free weekly allowance.
type OperationRepository interface {
	Create(date time.Time, opType models.OperationType, amount int64, precision int32, currency string, user *models.User) *models.Operation
	GetAll() []*models.Operation
	WeekWithdrawals(date time.Time, userID, operationID int) []*models.Operation
}

type operationRepository struct {
	operations []*models.Operation
}

// NewOperationRepository creates an empty run-scoped operation store.
func NewOperationRepository() OperationRepository {
	return &operationRepository{}
}

// Create stores an operation and assigns it the next 1-based id.
func (r *operationRepository) Create(
	date time.Time,
	opType models.OperationType,
	amount int64,
	precision int32,
	currency string,
	user *models.User,
) *models.Operation {
	op := &models.Operation{
		ID:              len(r.operations) + 1,
		Date:            date,
		Type:            opType,
		Amount:          amount,
		AmountPrecision: precision,
		Currency:        currency,
		User:            user,
	}
	r.operations = append(r.operations, op)
	return op
}

func (r *operationRepository) GetAll() []*models.Operation {
	return r.operations
}

// WeekWithdrawals returns, in insertion order, every stored cash-out by
// userID that falls in the Monday..Sunday week of date and is not
// chronologically or sequentially after the operation identified by
// operationID. The double date/id bound keeps the query strictly
// retrospective even though calculation runs after the whole batch has
// been stored.
func (r *operationRepository) WeekWithdrawals(date time.Time, userID, operationID int) []*models.Operation {
	start := utils.WeekStart(date)
	end := utils.WeekEnd(date)

	var withdrawals []*models.Operation
	for _, op := range r.operations {
		if !op.IsCashOut() || op.User.ID != userID {
			continue
		}
		if op.Date.Before(start) || op.Date.After(end) {
			continue
		}
		if op.Date.After(date) || op.ID > operationID {
			continue
		}
		withdrawals = append(withdrawals, op)
	}
	return withdrawals
}
