package models

import "time"

// Discount is a consumable weekly allowance belonging to one natural user.
// Remaining only ever decreases once the discount exists. A spent discount
// stays in the store; it absorbs nothing but is still a distinct condition
// from "no discount exists".
type Discount struct {
	User        *User
	PeriodStart time.Time
	PeriodEnd   time.Time
	Remaining   int64 // minor units
}

// InPeriod reports whether d falls inside the discount window, both bounds
// inclusive.
func (di *Discount) InPeriod(d time.Time) bool {
	return !d.Before(di.PeriodStart) && !d.After(di.PeriodEnd)
}

// Use consumes up to amount minor units from the balance and returns the
// part it could not absorb.
func (di *Discount) Use(amount int64) int64 {
	if di.Remaining == 0 {
		return amount
	}
	if di.Remaining >= amount {
		di.Remaining -= amount
		return 0
	}
	unused := amount - di.Remaining
	di.Remaining = 0
	return unused
}
