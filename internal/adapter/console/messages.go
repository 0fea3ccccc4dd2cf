package console

import (
	"errors"

	"github.com/iho/gobank/internal/domain"
)

const (
	msgMenu = `
================ MENU ================
[d]   Deposit
[s]   Withdraw
[e]   Statement
[nu]  New customer
[nc]  New account
[lc]  List accounts
[q]   Quit
=> `

	msgInvalidOption    = "Invalid option, please select again."
	msgInvalidAmount    = "Invalid amount."
	msgGoodbye          = "Thank you for using our banking system!"
	msgDepositDone      = "Deposit completed."
	msgWithdrawalDone   = "Withdrawal completed."
	msgCustomerCreated  = "Customer registered."
	msgAccountCreated   = "Account opened."
	msgNoMovements      = "No movements."
	msgStatementHeader  = "=============== STATEMENT ==============="
	msgStatementFooter  = "========================================="
	msgOperationAborted = "Operation aborted."
)

// mapDomainError maps domain errors to user-facing messages.
func mapDomainError(err error) string {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "Customer not found."
	case errors.Is(err, domain.ErrCustomerExists):
		return "A customer with this tax id already exists."
	case errors.Is(err, domain.ErrNoAccount):
		return "Customer has no account."
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Operation failed: the amount is invalid."
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "Operation failed: insufficient balance."
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "Operation failed: the amount exceeds the withdrawal limit."
	case errors.Is(err, domain.ErrMaxWithdrawalsExceeded):
		return "Operation failed: maximum number of withdrawals exceeded."
	default:
		return "Operation failed: " + err.Error()
	}
}

// kindLabel renders a transaction kind for the statement.
func kindLabel(kind domain.Kind) string {
	switch kind {
	case domain.KindDeposit:
		return "Deposit"
	case domain.KindWithdrawal:
		return "Withdrawal"
	default:
		return string(kind)
	}
}
