package commission

import (
	"time"

	"github.com/gyKa/commission-calculator/internal/models"
)

// OperationSource is the slice of the operation store the engine queries:
// prior same-week withdrawals by one user, bounded by the operation being
// evaluated.
type OperationSource interface {
	WeekWithdrawals(date time.Time, userID, operationID int) []*models.Operation
}

// DiscountSource looks up the weekly allowance active for a user on a date.
type DiscountSource interface {
	Find(userID int, date time.Time) *models.Discount
}
