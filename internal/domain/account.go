package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccount is the capability shared by all account variants.
type BankAccount interface {
	Number() int
	Branch() string
	Owner() *Customer
	Balance() decimal.Decimal
	History() *History
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// Account holds a balance and a transaction history. The balance is only
// reachable through Deposit and Withdraw, which keep it non-negative.
type Account struct {
	number  int
	branch  string
	owner   *Customer
	balance decimal.Decimal
	history *History
}

// NewAccount creates an account with a zero balance and an empty history.
func NewAccount(number int, branch string, owner *Customer) *Account {
	return &Account{
		number:  number,
		branch:  branch,
		owner:   owner,
		balance: decimal.Zero,
		history: NewHistory(),
	}
}

// Number returns the account number.
func (a *Account) Number() int { return a.number }

// Branch returns the branch code.
func (a *Account) Branch() string { return a.branch }

// Owner returns the owning customer.
func (a *Account) Owner() *Customer { return a.owner }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns the account's transaction history.
func (a *Account) History() *History { return a.history }

// Deposit increases the balance by amount. It fails without mutating
// anything when amount is not positive. History is not touched here; only
// Transaction.Apply records successful movements.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw decreases the balance by amount. It fails without mutating
// anything when amount is not positive or exceeds the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
