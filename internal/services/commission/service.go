package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gyKa/commission-calculator/internal/services/exchange"
	"github.com/gyKa/commission-calculator/internal/models"
)

// Service computes the fee for one stored operation. It is stateless
// across operations except through the stores it queries; the only write
// it performs is consuming the discount it looks up.
type Service interface {
	// Calculate returns the commission in the operation's own currency,
	// integer minor units.
	Calculate(op *models.Operation) (int64, error)
}

type service struct {
	operations OperationSource
	discounts  DiscountSource
	exchange   exchange.Service
}

// NewService creates the commission calculation engine.
func NewService(operations OperationSource, discounts DiscountSource, exchangeService exchange.Service) Service {
	if operations == nil {
		panic("operation source is required")
	}
	if discounts == nil {
		panic("discount source is required")
	}
	if exchangeService == nil {
		panic("exchange service is required")
	}
	return &service{
		operations: operations,
		discounts:  discounts,
		exchange:   exchangeService,
	}
}

func (s *service) Calculate(op *models.Operation) (int64, error) {
	switch {
	case op.IsCashIn():
		return s.cashIn(op)
	case op.IsCashOut() && op.User.IsLegal():
		return s.cashOutLegal(op)
	case op.IsCashOut() && op.User.IsNatural():
		return s.cashOutNatural(op)
	}
	return 0, fmt.Errorf("%w: %s for user %d", ErrUnsupportedOperation, op.Type, op.User.ID)
}

// cashIn charges 3% of the deposit, capped at CashInCap base units. The
// cap comes back converted into the operation's currency.
func (s *service) cashIn(op *models.Operation) (int64, error) {
	fee := decimal.NewFromInt(op.Amount).Mul(cashInRate)

	feeInBase, err := s.exchange.Convert(fee, s.exchange.BaseCurrency(), op.Currency)
	if err != nil {
		return 0, err
	}

	if feeInBase.GreaterThan(decimal.NewFromInt(CashInCap)) {
		fee, err = s.exchange.Convert(decimal.NewFromInt(CashInCap), op.Currency, s.exchange.BaseCurrency())
		if err != nil {
			return 0, err
		}
	}
	return toMinor(fee), nil
}

// cashOutLegal charges 30% of the withdrawal. A fee at or under
// CashOutFloor base units is replaced by CashOutSubstitute converted into
// the operation's currency (see constants.go for why the substitute is not
// the floor).
func (s *service) cashOutLegal(op *models.Operation) (int64, error) {
	fee := decimal.NewFromInt(op.Amount).Mul(cashOutRate)

	feeInBase, err := s.exchange.Convert(fee, s.exchange.BaseCurrency(), op.Currency)
	if err != nil {
		return 0, err
	}

	if feeInBase.LessThanOrEqual(decimal.NewFromInt(CashOutFloor)) {
		fee, err = s.exchange.Convert(decimal.NewFromInt(CashOutSubstitute), op.Currency, s.exchange.BaseCurrency())
		if err != nil {
			return 0, err
		}
	}
	return toMinor(fee), nil
}

// cashOutNatural decides between the discounted path (withdrawals one to
// three of the week) and the full 30% fee (fourth and later, discount
// bypassed). The weekly query includes the operation itself, so "within
// the allowance" means a count of at most FreeWithdrawalsPerWeek.
func (s *service) cashOutNatural(op *models.Operation) (int64, error) {
	withdrawals := s.operations.WeekWithdrawals(op.Date, op.User.ID, op.ID)
	if len(withdrawals) > FreeWithdrawalsPerWeek {
		return s.fullRate(op.Amount, op.Currency)
	}

	discount := s.discounts.Find(op.User.ID, op.Date)
	if discount == nil {
		return s.fullRate(op.Amount, op.Currency)
	}

	base := s.exchange.BaseCurrency()
	amountInBase, err := s.exchange.Convert(decimal.NewFromInt(op.Amount), base, op.Currency)
	if err != nil {
		return 0, err
	}

	unused := discount.Use(ceilMinor(amountInBase))
	if unused == 0 {
		return 0, nil
	}

	fee, err := s.exchange.Convert(decimal.NewFromInt(unused), op.Currency, base)
	if err != nil {
		return 0, err
	}
	return toMinor(fee.Mul(cashOutRate)), nil
}

// fullRate is the undiscounted 30% withdrawal fee. The conversion leaves
// the from currency unset so the lookup uses the process default.
func (s *service) fullRate(amount int64, currency string) (int64, error) {
	converted, err := s.exchange.Convert(decimal.NewFromInt(amount), currency, "")
	if err != nil {
		return 0, err
	}
	return toMinor(converted.Mul(cashOutRate)), nil
}

// ceilMinor rounds a converted minor-unit amount up to the next whole
// minor unit before it hits the discount ledger. In major-unit terms this
// is a ceiling to two decimal places, and it is the single place converted
// amounts are rounded mid-calculation.
func ceilMinor(d decimal.Decimal) int64 {
	return d.Ceil().IntPart()
}

// toMinor rounds a finished fee to integer minor units, half away from
// zero.
func toMinor(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
