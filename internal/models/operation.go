package models

import "time"

// OperationType is the cash movement direction of an operation.
type OperationType string

const (
	OperationCashIn  OperationType = "cash_in"
	OperationCashOut OperationType = "cash_out"
)

// Operation is one processed cash movement. It is immutable once stored.
// ID is assigned by the operation repository in ingestion order (1-based)
// and breaks ties for "occurred before" when dates collide; dates
// themselves need not be monotonic, back-dated entries are allowed.
type Operation struct {
	ID              int
	Date            time.Time
	Type            OperationType
	Amount          int64 // minor units
	AmountPrecision int32 // fractional digits observed on input (0 or 2)
	Currency        string
	User            *User
}

func (o *Operation) IsCashIn() bool { return o.Type == OperationCashIn }

func (o *Operation) IsCashOut() bool { return o.Type == OperationCashOut }
