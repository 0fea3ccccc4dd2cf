package memory

import (
	"context"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// CustomerRepository is a slice-backed customer store. Lookup is a linear
// scan; the registry never grows beyond toy scale.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*domain.Customer
}

// NewCustomerRepository creates an empty CustomerRepository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Create appends the customer to the registry.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, customer)
	return nil
}

// GetByTaxID returns the first customer with the given tax id.
func (r *CustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.TaxID() == taxID {
			return c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

// List returns the customers in registration order.
func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}
