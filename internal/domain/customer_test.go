package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestCustomer() *Customer {
	birth := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	return NewCustomer("12345678901", "Jane Roe", birth, "1 Main St - Springfield/SP")
}

func TestCustomer_PrimaryAccount(t *testing.T) {
	c := newTestCustomer()

	if _, err := c.PrimaryAccount(); !errors.Is(err, ErrNoAccount) {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}

	first := NewCheckingAccount(1, "0001", c, DefaultWithdrawalLimit, DefaultMaxWithdrawals)
	second := NewCheckingAccount(2, "0001", c, DefaultWithdrawalLimit, DefaultMaxWithdrawals)
	c.AddAccount(first)
	c.AddAccount(second)

	got, err := c.PrimaryAccount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Number() != 1 {
		t.Errorf("primary account must be the first attached, got number %d", got.Number())
	}
	if len(c.Accounts()) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(c.Accounts()))
	}
}

func TestCustomer_PerformTransaction(t *testing.T) {
	c := newTestCustomer()
	acc := NewCheckingAccount(1, "0001", c, DefaultWithdrawalLimit, DefaultMaxWithdrawals)
	c.AddAccount(acc)

	if err := c.PerformTransaction(acc, NewDeposit(decimal.NewFromInt(250))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !acc.Balance().Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected balance 250, got %s", acc.Balance())
	}
	if acc.History().Len() != 1 {
		t.Errorf("expected one history record, got %d", acc.History().Len())
	}
}
