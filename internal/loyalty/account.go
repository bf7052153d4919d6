// Package loyalty implements the loyalty points programme: one point per unit
// of currency spent, redeemable as payment at checkout.
package loyalty

import "math"

// Account holds a non-negative point balance.
type Account struct {
	points float64
}

// NewAccount returns an account with a zero balance.
func NewAccount() *Account {
	return &Account{}
}

// Points returns the current balance.
func (a *Account) Points() float64 {
	return a.points
}

// Add credits points to the balance. Non-positive amounts are ignored.
func (a *Account) Add(points float64) {
	if points > 0 {
		a.points += points
	}
}

// Deduct removes up to points from the balance and returns the amount actually
// removed. The balance never goes negative.
func (a *Account) Deduct(points float64) float64 {
	if points <= 0 {
		return 0
	}
	removed := math.Min(points, a.points)
	a.points -= removed
	return removed
}
