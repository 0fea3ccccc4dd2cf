package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// TransactionUseCase applies deposits and withdrawals to a customer's
// primary account and produces statements.
type TransactionUseCase struct {
	customerRepo CustomerRepository
	log          zerolog.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(customerRepo CustomerRepository, log zerolog.Logger) *TransactionUseCase {
	return &TransactionUseCase{
		customerRepo: customerRepo,
		log:          log,
	}
}

// Deposit applies a deposit to the customer's primary account.
func (uc *TransactionUseCase) Deposit(ctx context.Context, taxID string, amount decimal.Decimal) error {
	return uc.perform(ctx, taxID, domain.NewDeposit(amount))
}

// Withdraw applies a withdrawal to the customer's primary account, subject
// to the account's withdrawal rules.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) error {
	return uc.perform(ctx, taxID, domain.NewWithdrawal(amount))
}

func (uc *TransactionUseCase) perform(ctx context.Context, taxID string, tx domain.Transaction) error {
	customer, err := uc.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		return err
	}

	account, err := customer.PrimaryAccount()
	if err != nil {
		return err
	}

	if err := customer.PerformTransaction(account, tx); err != nil {
		uc.log.Warn().
			Str("tax_id", taxID).
			Str("kind", string(tx.Kind())).
			Str("amount", tx.Amount().String()).
			Err(err).
			Msg("transaction rejected")
		return err
	}

	uc.log.Info().
		Str("tax_id", taxID).
		Str("kind", string(tx.Kind())).
		Str("amount", tx.Amount().String()).
		Str("balance", account.Balance().String()).
		Msg("transaction applied")
	return nil
}

// Statement is the ordered history plus the current balance of an account.
type Statement struct {
	Records []domain.Record
	Balance decimal.Decimal
}

// GetStatement returns the statement for the customer's primary account.
func (uc *TransactionUseCase) GetStatement(ctx context.Context, taxID string) (*Statement, error) {
	customer, err := uc.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	account, err := customer.PrimaryAccount()
	if err != nil {
		return nil, err
	}

	return &Statement{
		Records: account.History().Entries(),
		Balance: account.Balance(),
	}, nil
}
