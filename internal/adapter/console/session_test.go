package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/adapter/console"
	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/usecase"
)

// runScript feeds the session one input line per menu prompt and returns
// everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	log := zerolog.Nop()
	customerUC := usecase.NewCustomerUseCase(customerRepo, log)
	accountUC := usecase.NewAccountUseCase(customerRepo, accountRepo, usecase.CheckingConfig{
		BranchCode:      "0001",
		WithdrawalLimit: decimal.NewFromInt(500),
		MaxWithdrawals:  3,
	}, log)
	transactionUC := usecase.NewTransactionUseCase(customerRepo, log)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	session := console.NewSession(in, &out, customerUC, accountUC, transactionUC, "$", log)
	require.NoError(t, session.Run(context.Background()))

	return out.String()
}

func TestSession_FullFlow(t *testing.T) {
	output := runScript(t,
		"nu",
		"12345678901",
		"Jane Roe",
		"14-03-1990",
		"1 Main St - Springfield/SP",
		"nc",
		"12345678901",
		"d",
		"12345678901",
		"1000",
		"s",
		"12345678901",
		"200",
		"e",
		"12345678901",
		"lc",
		"q",
	)

	assert.Contains(t, output, "Customer registered.")
	assert.Contains(t, output, "Account opened.")
	assert.Contains(t, output, "Number: 1")
	assert.Contains(t, output, "Deposit completed.")
	assert.Contains(t, output, "Withdrawal completed.")
	assert.Contains(t, output, "Deposit:\t$ 1000.00")
	assert.Contains(t, output, "Withdrawal:\t$ 200.00")
	assert.Contains(t, output, "Balance:\t$ 800.00")
	assert.Contains(t, output, "Holder:\tJane Roe")
	assert.Contains(t, output, "Thank you for using our banking system!")
}

func TestSession_InvalidOption(t *testing.T) {
	output := runScript(t, "x", "q")

	assert.Contains(t, output, "Invalid option, please select again.")
}

func TestSession_InvalidAmount(t *testing.T) {
	output := runScript(t,
		"nu",
		"12345678901",
		"Jane Roe",
		"14-03-1990",
		"1 Main St",
		"nc",
		"12345678901",
		"d",
		"12345678901",
		"ten",
		"q",
	)

	assert.Contains(t, output, "Invalid amount.")
	assert.NotContains(t, output, "Deposit completed.")
}

func TestSession_CustomerNotFound(t *testing.T) {
	output := runScript(t,
		"d",
		"00000000000",
		"10",
		"q",
	)

	assert.Contains(t, output, "Customer not found.")
}

func TestSession_NoAccount(t *testing.T) {
	output := runScript(t,
		"nu",
		"12345678901",
		"Jane Roe",
		"14-03-1990",
		"1 Main St",
		"d",
		"12345678901",
		"10",
		"q",
	)

	assert.Contains(t, output, "Customer has no account.")
}

func TestSession_DuplicateCustomer(t *testing.T) {
	output := runScript(t,
		"nu",
		"12345678901",
		"Jane Roe",
		"14-03-1990",
		"1 Main St",
		"nu",
		"12345678901",
		"Someone Else",
		"02-02-1992",
		"2 Side St",
		"q",
	)

	assert.Contains(t, output, "A customer with this tax id already exists.")
}

func TestSession_StatementEmpty(t *testing.T) {
	output := runScript(t,
		"nu",
		"12345678901",
		"Jane Roe",
		"14-03-1990",
		"1 Main St",
		"nc",
		"12345678901",
		"e",
		"12345678901",
		"q",
	)

	assert.Contains(t, output, "No movements.")
	assert.Contains(t, output, "Balance:\t$ 0.00")
}

func TestSession_WithdrawalRules(t *testing.T) {
	output := runScript(t,
		"nu",
		"12345678901",
		"Jane Roe",
		"14-03-1990",
		"1 Main St",
		"nc",
		"12345678901",
		"d",
		"12345678901",
		"1000",
		"s",
		"12345678901",
		"600",
		"q",
	)

	assert.Contains(t, output, "Operation failed: the amount exceeds the withdrawal limit.")
}

func TestSession_EndsOnEOF(t *testing.T) {
	// No "q": the input simply runs out.
	output := runScript(t, "lc")

	assert.NotContains(t, output, "Thank you for using our banking system!")
}
