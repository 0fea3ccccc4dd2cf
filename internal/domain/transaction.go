package domain

import (
	"github.com/shopspring/decimal"
)

// Transaction is a requested amount movement against an account. It is a
// value, not stored state; only its successful application leaves a Record
// in the account's history.
type Transaction struct {
	kind   Kind
	amount decimal.Decimal
}

// NewDeposit creates a deposit transaction.
func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{kind: KindDeposit, amount: amount}
}

// NewWithdrawal creates a withdrawal transaction.
func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{kind: KindWithdrawal, amount: amount}
}

// Kind returns the transaction kind.
func (t Transaction) Kind() Kind { return t.kind }

// Amount returns the transaction amount.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Apply runs the movement against the account and records it in the
// account's history only when the account accepted it. A failed movement
// leaves both balance and history untouched.
func (t Transaction) Apply(account BankAccount) error {
	var err error
	switch t.kind {
	case KindDeposit:
		err = account.Deposit(t.amount)
	case KindWithdrawal:
		err = account.Withdraw(t.amount)
	default:
		return ErrUnknownTransactionKind
	}
	if err != nil {
		return err
	}
	account.History().Record(t.kind, t.amount)
	return nil
}
