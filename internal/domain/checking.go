package domain

import (
	"github.com/shopspring/decimal"
)

// Checking account defaults.
const DefaultMaxWithdrawals = 3

// DefaultWithdrawalLimit is the default cap on a single withdrawal.
var DefaultWithdrawalLimit = decimal.NewFromInt(500)

// CheckingAccount is an Account with a per-withdrawal amount limit and a cap
// on the number of withdrawals.
type CheckingAccount struct {
	Account
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
}

// NewCheckingAccount creates a checking account with the given limits.
func NewCheckingAccount(number int, branch string, owner *Customer, withdrawalLimit decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		Account:         *NewAccount(number, branch, owner),
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

// WithdrawalLimit returns the per-withdrawal amount cap.
func (c *CheckingAccount) WithdrawalLimit() decimal.Decimal { return c.withdrawalLimit }

// MaxWithdrawals returns the withdrawal-count cap.
func (c *CheckingAccount) MaxWithdrawals() int { return c.maxWithdrawals }

// Withdraw applies the checking rules before the base withdrawal logic.
// The count spans the whole history, not a day or a statement period.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(c.withdrawalLimit) {
		return ErrWithdrawalLimitExceeded
	}
	if c.History().CountByKind(KindWithdrawal) >= c.maxWithdrawals {
		return ErrMaxWithdrawalsExceeded
	}
	return c.Account.Withdraw(amount)
}
