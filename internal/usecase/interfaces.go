package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account domain.BankAccount) error
	// NextNumber reserves and returns the next sequential account number.
	NextNumber(ctx context.Context) (int, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
}
