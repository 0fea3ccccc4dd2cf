package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// CheckingConfig holds the limits applied to newly opened checking accounts.
type CheckingConfig struct {
	BranchCode      string
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

// AccountUseCase handles account opening and listing.
type AccountUseCase struct {
	customerRepo CustomerRepository
	accountRepo  AccountRepository
	cfg          CheckingConfig
	log          zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(customerRepo CustomerRepository, accountRepo AccountRepository, cfg CheckingConfig, log zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		cfg:          cfg,
		log:          log,
	}
}

// OpenChecking opens a checking account for the customer with the next
// sequential account number and attaches it to the customer.
func (uc *AccountUseCase) OpenChecking(ctx context.Context, taxID string) (*domain.CheckingAccount, error) {
	customer, err := uc.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	number, err := uc.accountRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	account := domain.NewCheckingAccount(number, uc.cfg.BranchCode, customer, uc.cfg.WithdrawalLimit, uc.cfg.MaxWithdrawals)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	customer.AddAccount(account)

	uc.log.Info().
		Str("tax_id", taxID).
		Int("account_number", number).
		Msg("checking account opened")
	return account, nil
}

// List returns every account in opening order.
func (uc *AccountUseCase) List(ctx context.Context) ([]domain.BankAccount, error) {
	return uc.accountRepo.List(ctx)
}
