// Package register models the cash-drawer balance of a store register.
package register

import "github.com/noah-isme/kasir/internal/money"

// Register holds the drawer balance shared across sequential payments.
// Serialized access is the caller's responsibility; the register itself
// provides no locking.
type Register struct {
	balance money.Money
}

// New opens a register with the given balance.
func New(opening money.Money) *Register {
	return &Register{balance: opening}
}

// Add puts an amount into the register.
func (r *Register) Add(amount money.Money) {
	r.balance = r.balance.Add(amount)
}

// Balance returns the current drawer balance.
func (r *Register) Balance() money.Money {
	return r.balance
}
