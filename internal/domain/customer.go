package domain

import (
	"time"
)

// Customer is a registered identity that owns accounts. The tax id is the
// unique external key used by all lookups.
type Customer struct {
	taxID     string
	name      string
	birthDate time.Time
	address   string
	accounts  []BankAccount
}

// NewCustomer creates a customer with no accounts.
func NewCustomer(taxID, name string, birthDate time.Time, address string) *Customer {
	return &Customer{
		taxID:     taxID,
		name:      name,
		birthDate: birthDate,
		address:   address,
	}
}

// TaxID returns the customer's unique identifier.
func (c *Customer) TaxID() string { return c.taxID }

// Name returns the display name.
func (c *Customer) Name() string { return c.name }

// BirthDate returns the date of birth.
func (c *Customer) BirthDate() time.Time { return c.birthDate }

// Address returns the registered address.
func (c *Customer) Address() string { return c.address }

// AddAccount appends an account to the owned collection. No uniqueness
// check; callers are responsible for not attaching the same account twice.
func (c *Customer) AddAccount(account BankAccount) {
	c.accounts = append(c.accounts, account)
}

// Accounts returns the owned accounts in attachment order.
func (c *Customer) Accounts() []BankAccount {
	out := make([]BankAccount, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// PrimaryAccount returns the first owned account. Every interactive flow
// operates on it even though a customer may own several accounts.
func (c *Customer) PrimaryAccount() (BankAccount, error) {
	if len(c.accounts) == 0 {
		return nil, ErrNoAccount
	}
	return c.accounts[0], nil
}

// PerformTransaction applies the transaction to the given account. It keeps
// the mutation entry point on the customer instead of letting callers reach
// into accounts directly.
func (c *Customer) PerformTransaction(account BankAccount, tx Transaction) error {
	return tx.Apply(account)
}
