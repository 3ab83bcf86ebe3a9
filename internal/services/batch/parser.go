package batch

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gyKa/commission-calculator/internal/models"
)

const recordFields = 6

// Record is one validated input row, ready to be ingested. Amount is in
// minor units; AmountPrecision is the number of fractional digits the raw
// amount carried (0 or 2), used only when formatting the commission.
type Record struct {
	Date            time.Time
	UserID          int
	UserType        models.UserType
	OperationType   models.OperationType
	Amount          int64
	AmountPrecision int32
	Currency        string
}

// ParseRecord validates one raw CSV row of the form
// date,userId,userType,operationType,amount,currency. dateLayout is the Go
// time layout the batch was exported with.
func ParseRecord(fields []string, dateLayout string) (*Record, error) {
	if len(fields) != recordFields {
		return nil, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, fields[0])
	}

	userID, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, fields[1])
	}

	userType := models.UserType(strings.TrimSpace(fields[2]))
	switch userType {
	case models.UserTypeNatural, models.UserTypeLegal:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserType, fields[2])
	}

	opType := models.OperationType(strings.TrimSpace(fields[3]))
	switch opType {
	case models.OperationCashIn, models.OperationCashOut:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperationType, fields[3])
	}

	amount, precision, err := parseAmount(strings.TrimSpace(fields[4]))
	if err != nil {
		return nil, err
	}

	currency := strings.TrimSpace(fields[5])
	if currency == "" {
		return nil, ErrMissingCurrency
	}

	return &Record{
		Date:            date,
		UserID:          userID,
		UserType:        userType,
		OperationType:   opType,
		Amount:          amount,
		AmountPrecision: precision,
		Currency:        currency,
	}, nil
}

// parseAmount converts a decimal amount string to minor units, recording
// the fractional precision it arrived with. Whole-unit amounts multiply by
// 100; fractional ones must carry exactly two digits.
func parseAmount(raw string) (int64, int32, error) {
	whole, frac, found := strings.Cut(raw, ".")
	if !found {
		units, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || units < 0 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		return units * 100, 0, nil
	}

	if len(frac) != 2 {
		return 0, 0, fmt.Errorf("%w: %q must have exactly two fractional digits", ErrInvalidAmount, raw)
	}
	minor, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil || minor < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return minor, 2, nil
}
