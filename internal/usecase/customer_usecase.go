package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// BirthDateLayout is the expected format of birth dates in registration
// input (day-month-year).
const BirthDateLayout = "02-01-2006"

// CustomerUseCase handles customer registration and lookup.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	validate     *validator.Validate
	log          zerolog.Logger
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, log zerolog.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		validate:     validator.New(),
		log:          log,
	}
}

// RegisterCustomerInput represents input for registering a customer.
type RegisterCustomerInput struct {
	TaxID     string `validate:"required,len=11,numeric"`
	Name      string `validate:"required,max=255"`
	BirthDate string `validate:"required,datetime=02-01-2006"`
	Address   string `validate:"required"`
}

// Register creates a new customer. It fails with domain.ErrCustomerExists
// when the tax id is already registered, leaving the existing customer
// untouched.
func (uc *CustomerUseCase) Register(ctx context.Context, input RegisterCustomerInput) (*domain.Customer, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration input: %w", err)
	}

	if _, err := uc.customerRepo.GetByTaxID(ctx, input.TaxID); err == nil {
		return nil, domain.ErrCustomerExists
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	birthDate, err := time.Parse(BirthDateLayout, input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date: %w", err)
	}

	customer := domain.NewCustomer(input.TaxID, input.Name, birthDate, input.Address)
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	uc.log.Info().Str("tax_id", customer.TaxID()).Msg("customer registered")
	return customer, nil
}

// Find retrieves a customer by tax id.
func (uc *CustomerUseCase) Find(ctx context.Context, taxID string) (*domain.Customer, error) {
	return uc.customerRepo.GetByTaxID(ctx, taxID)
}
