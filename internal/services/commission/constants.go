package commission

import "github.com/shopspring/decimal"

// Fee schedule. Fixed amounts are minor units of the base currency.
const (
	// CashInCap bounds the deposit fee at 500.00 base-currency units.
	CashInCap int64 = 50000

	// CashOutFloor is the legal-user withdrawal fee threshold, 50.00 base
	// units. A fee at or under the floor is replaced by CashOutSubstitute
	// converted into the operation's currency. The substitute is the 500.00
	// cash-in cap amount, not the floor itself; that asymmetry is
	// long-standing billing behaviour and is kept as is.
	CashOutFloor      int64 = 5000
	CashOutSubstitute int64 = 50000

	// FreeWithdrawalsPerWeek is how many withdrawals per calendar week may
	// draw on a natural user's discount.
	FreeWithdrawalsPerWeek = 3
)

var (
	cashInRate  = decimal.RequireFromString("0.03")
	cashOutRate = decimal.RequireFromString("0.3")
)
