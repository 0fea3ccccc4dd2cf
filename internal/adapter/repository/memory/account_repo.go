package memory

import (
	"context"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository is a slice-backed account store. Account numbers are
// handed out sequentially starting at 1 and stay unique for the process
// lifetime.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.BankAccount
	next     int
}

// NewAccountRepository creates an empty AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// Create appends the account to the registry.
func (r *AccountRepository) Create(ctx context.Context, account domain.BankAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, account)
	return nil
}

// NextNumber reserves the next sequential account number.
func (r *AccountRepository) NextNumber(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next, nil
}

// List returns the accounts in opening order.
func (r *AccountRepository) List(ctx context.Context) ([]domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.BankAccount, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
