package commission

import "github.com/shopspring/decimal"

var minorUnitsPerUnit = decimal.NewFromInt(100)

// Format renders a minor-unit commission as a decimal string with the
// fractional precision the originating operation's amount arrived with.
// The separator is always ".", never locale-dependent.
func Format(minor int64, precision int32) string {
	return decimal.NewFromInt(minor).Div(minorUnitsPerUnit).StringFixed(precision)
}
