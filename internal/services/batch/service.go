package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gyKa/commission-calculator/internal/repositories"
	"github.com/gyKa/commission-calculator/internal/services/commission"
	"github.com/gyKa/commission-calculator/internal/utils"
)

// WeeklyDiscount is the balance, in base-currency minor units, a natural
// user's allowance opens with each week.
const WeeklyDiscount int64 = 100000

// Service runs a commission batch in two strict passes: ingest every
// record into the run-scoped stores, then calculate a commission for every
// stored operation in ingestion order. Any error aborts the run; partial
// output is never returned.
type Service interface {
	Run(r io.Reader) ([]Result, error)
}

// Result pairs a stored operation with its formatted commission.
type Result struct {
	OperationID int    `json:"operation_id"`
	Commission  string `json:"commission"`
}

type service struct {
	users      repositories.UserRepository
	operations repositories.OperationRepository
	discounts  repositories.DiscountRepository
	calculator commission.Service
	dateLayout string
	log        zerolog.Logger
}

// NewService creates a batch runner over run-scoped stores. The stores
// must be the same instances the calculator was built on.
func NewService(
	users repositories.UserRepository,
	operations repositories.OperationRepository,
	discounts repositories.DiscountRepository,
	calculator commission.Service,
	dateLayout string,
	log zerolog.Logger,
) Service {
	if users == nil || operations == nil || discounts == nil {
		panic("repositories are required")
	}
	if calculator == nil {
		panic("commission calculator is required")
	}
	return &service{
		users:      users,
		operations: operations,
		discounts:  discounts,
		calculator: calculator,
		dateLayout: dateLayout,
		log:        log,
	}
}

func (s *service) Run(r io.Reader) ([]Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count is validated per record
	reader.TrimLeadingSpace = true

	line := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", line, err)
		}

		record, err := ParseRecord(fields, s.dateLayout)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		s.ingest(record)
	}

	operations := s.operations.GetAll()
	results := make([]Result, 0, len(operations))
	for _, op := range operations {
		fee, err := s.calculator.Calculate(op)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", op.ID, err)
		}
		results = append(results, Result{
			OperationID: op.ID,
			Commission:  commission.Format(fee, op.AmountPrecision),
		})
	}

	s.log.Info().Int("operations", len(operations)).Msg("batch calculated")
	return results, nil
}

// ingest stores one record and, on a natural user's first withdrawal of a
// week, opens that week's allowance. Later withdrawals in the same week
// find the existing discount, so at most one exists per user and week.
func (s *service) ingest(record *Record) {
	user := s.users.FindOrCreate(record.UserID, record.UserType)
	op := s.operations.Create(
		record.Date,
		record.OperationType,
		record.Amount,
		record.AmountPrecision,
		record.Currency,
		user,
	)

	if op.IsCashOut() && user.IsNatural() && s.discounts.Find(user.ID, op.Date) == nil {
		s.discounts.Create(user, utils.WeekStart(op.Date), utils.WeekEnd(op.Date), WeeklyDiscount)
	}
}
