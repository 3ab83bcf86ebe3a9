package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyKa/commission-calculator/internal/models"
)

const testLayout = "02/01/2006 15:04:05"

func TestParseRecord(t *testing.T) {
	record, err := ParseRecord([]string{
		"31/12/2014 10:00:00", "4", "natural", "cash_out", "1200.00", "EUR",
	}, testLayout)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2014, time.December, 31, 10, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, 4, record.UserID)
	assert.Equal(t, models.UserTypeNatural, record.UserType)
	assert.Equal(t, models.OperationCashOut, record.OperationType)
	assert.Equal(t, int64(120000), record.Amount)
	assert.Equal(t, int32(2), record.AmountPrecision)
	assert.Equal(t, "EUR", record.Currency)
}

func TestParseRecordWholeUnitsAmount(t *testing.T) {
	record, err := ParseRecord([]string{
		"08/01/2015 10:00:00", "1", "natural", "cash_out", "30000", "JPY",
	}, testLayout)
	require.NoError(t, err)

	assert.Equal(t, int64(3000000), record.Amount)
	assert.Equal(t, int32(0), record.AmountPrecision)
}

func TestParseRecordErrors(t *testing.T) {
	valid := []string{"05/01/2015 10:00:00", "1", "natural", "cash_in", "100.00", "EUR"}

	tests := []struct {
		name    string
		mutate  func([]string)
		wantErr error
	}{
		{"empty currency", func(f []string) { f[5] = "" }, ErrMissingCurrency},
		{"bad date", func(f []string) { f[0] = "2015-01-05" }, ErrInvalidDate},
		{"bad user id", func(f []string) { f[1] = "abc" }, ErrInvalidUserID},
		{"zero user id", func(f []string) { f[1] = "0" }, ErrInvalidUserID},
		{"bad user type", func(f []string) { f[2] = "robot" }, ErrInvalidUserType},
		{"bad operation type", func(f []string) { f[3] = "transfer" }, ErrInvalidOperationType},
		{"one fractional digit", func(f []string) { f[4] = "100.5" }, ErrInvalidAmount},
		{"three fractional digits", func(f []string) { f[4] = "100.505" }, ErrInvalidAmount},
		{"negative amount", func(f []string) { f[4] = "-3.00" }, ErrInvalidAmount},
		{"non-numeric amount", func(f []string) { f[4] = "ten" }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := append([]string(nil), valid...)
			tt.mutate(fields)

			_, err := ParseRecord(fields, testLayout)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRecordFieldCount(t *testing.T) {
	_, err := ParseRecord([]string{"05/01/2015 10:00:00", "1", "natural"}, testLayout)
	assert.ErrorIs(t, err, ErrFieldCount)
}
