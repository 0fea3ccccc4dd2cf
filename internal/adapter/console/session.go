package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/usecase"
)

const timestampLayout = "02-01-2006 15:04:05"

// Session is the interactive menu loop. It reads options from in, runs the
// matching use case and renders the outcome on out. One command at a time,
// each processed to completion before the next prompt.
type Session struct {
	in           *bufio.Scanner
	out          io.Writer
	customers    *usecase.CustomerUseCase
	accounts     *usecase.AccountUseCase
	transactions *usecase.TransactionUseCase
	currency     string
	log          zerolog.Logger
}

// NewSession creates a session over the given streams.
func NewSession(
	in io.Reader,
	out io.Writer,
	customers *usecase.CustomerUseCase,
	accounts *usecase.AccountUseCase,
	transactions *usecase.TransactionUseCase,
	currency string,
	log zerolog.Logger,
) *Session {
	return &Session{
		in:           bufio.NewScanner(in),
		out:          out,
		customers:    customers,
		accounts:     accounts,
		transactions: transactions,
		currency:     currency,
		log:          log,
	}
}

// Run loops until the quit option, end of input, or context cancellation.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, msgMenu)
		option, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		s.log.Debug().Str("option", option).Msg("menu option selected")

		switch option {
		case "d":
			s.handleDeposit(ctx)
		case "s":
			s.handleWithdraw(ctx)
		case "e":
			s.handleStatement(ctx)
		case "nu":
			s.handleNewCustomer(ctx)
		case "nc":
			s.handleNewAccount(ctx)
		case "lc":
			s.handleListAccounts(ctx)
		case "q":
			fmt.Fprintln(s.out, msgGoodbye)
			return nil
		default:
			fmt.Fprintln(s.out, msgInvalidOption)
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptAmount reads an amount, keeping parse failures at this boundary so
// the core only ever sees decimals.
func (s *Session) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(s.out, msgInvalidAmount)
		return decimal.Zero, false
	}
	return amount, true
}

func (s *Session) handleDeposit(ctx context.Context) {
	taxID, ok := s.prompt("Customer tax id: ")
	if !ok {
		return
	}
	amount, ok := s.promptAmount("Deposit amount: ")
	if !ok {
		return
	}
	if err := s.transactions.Deposit(ctx, taxID, amount); err != nil {
		fmt.Fprintln(s.out, mapDomainError(err))
		return
	}
	fmt.Fprintln(s.out, msgDepositDone)
}

func (s *Session) handleWithdraw(ctx context.Context) {
	taxID, ok := s.prompt("Customer tax id: ")
	if !ok {
		return
	}
	amount, ok := s.promptAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	if err := s.transactions.Withdraw(ctx, taxID, amount); err != nil {
		fmt.Fprintln(s.out, mapDomainError(err))
		return
	}
	fmt.Fprintln(s.out, msgWithdrawalDone)
}

func (s *Session) handleStatement(ctx context.Context) {
	taxID, ok := s.prompt("Customer tax id: ")
	if !ok {
		return
	}
	statement, err := s.transactions.GetStatement(ctx, taxID)
	if err != nil {
		fmt.Fprintln(s.out, mapDomainError(err))
		return
	}

	fmt.Fprintln(s.out, msgStatementHeader)
	if len(statement.Records) == 0 {
		fmt.Fprintln(s.out, msgNoMovements)
	}
	for _, rec := range statement.Records {
		fmt.Fprintf(s.out, "%s:\t%s %s at %s\n",
			kindLabel(rec.Kind),
			s.currency,
			rec.Amount.StringFixed(2),
			rec.CreatedAt.Format(timestampLayout),
		)
	}
	fmt.Fprintf(s.out, "Balance:\t%s %s\n", s.currency, statement.Balance.StringFixed(2))
	fmt.Fprintln(s.out, msgStatementFooter)
}

func (s *Session) handleNewCustomer(ctx context.Context) {
	taxID, ok := s.prompt("Tax id (11 digits): ")
	if !ok {
		return
	}
	name, ok := s.prompt("Full name: ")
	if !ok {
		return
	}
	birthDate, ok := s.prompt("Birth date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	address, ok := s.prompt("Address: ")
	if !ok {
		return
	}

	_, err := s.customers.Register(ctx, usecase.RegisterCustomerInput{
		TaxID:     taxID,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	})
	if err != nil {
		fmt.Fprintln(s.out, mapDomainError(err))
		return
	}
	fmt.Fprintln(s.out, msgCustomerCreated)
}

func (s *Session) handleNewAccount(ctx context.Context) {
	taxID, ok := s.prompt("Customer tax id: ")
	if !ok {
		return
	}
	account, err := s.accounts.OpenChecking(ctx, taxID)
	if err != nil {
		fmt.Fprintln(s.out, mapDomainError(err))
		fmt.Fprintln(s.out, msgOperationAborted)
		return
	}
	fmt.Fprintf(s.out, "%s Branch: %s Number: %d\n", msgAccountCreated, account.Branch(), account.Number())
}

func (s *Session) handleListAccounts(ctx context.Context) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		fmt.Fprintln(s.out, mapDomainError(err))
		return
	}
	for _, account := range accounts {
		fmt.Fprintln(s.out, strings.Repeat("=", 40))
		fmt.Fprintf(s.out, "Branch:\t%s\n", account.Branch())
		fmt.Fprintf(s.out, "Number:\t%d\n", account.Number())
		fmt.Fprintf(s.out, "Holder:\t%s\n", account.Owner().Name())
	}
}
