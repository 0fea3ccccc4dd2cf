package domain

import "errors"

var (
	// Account errors
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrWithdrawalLimitExceeded = errors.New("amount exceeds the per-withdrawal limit")
	ErrMaxWithdrawalsExceeded  = errors.New("maximum number of withdrawals exceeded")
	ErrNoAccount               = errors.New("customer has no account")
	ErrAccountNotFound         = errors.New("account not found")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer with this tax id already exists")

	// Transaction errors
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")
)
