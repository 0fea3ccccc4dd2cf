package mocks

import (
	"context"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	CreateFunc     func(ctx context.Context, customer *domain.Customer) error
	GetByTaxIDFunc func(ctx context.Context, taxID string) (*domain.Customer, error)
	ListFunc       func(ctx context.Context) ([]*domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.TaxID()] = customer
	return nil
}

func (m *MockCustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	if m.GetByTaxIDFunc != nil {
		return m.GetByTaxIDFunc(ctx, taxID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[taxID]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.BankAccount
	next     int

	CreateFunc     func(ctx context.Context, account domain.BankAccount) error
	NextNumberFunc func(ctx context.Context) (int, error)
	ListFunc       func(ctx context.Context) ([]domain.BankAccount, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, account)
	return nil
}

func (m *MockAccountRepository) NextNumber(ctx context.Context) (int, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return m.next, nil
}

func (m *MockAccountRepository) List(ctx context.Context) ([]domain.BankAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.BankAccount, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}
