package ledger

import "errors"

var (
	ErrWalletNotFound    error = errors.New("wallet not found")
	ErrInsufficientFunds error = errors.New("insufficient funds")
	ErrCurrencyMismatch  error = errors.New("transaction currency does not match wallet currency")

	ErrInvalidAmount      error = errors.New("amount must be greater than zero")
	ErrSameWallet         error = errors.New("source and destination wallet must differ")
	ErrInvoiceAlreadyPaid error = errors.New("invoice is already paid")
	ErrWalletExists       error = errors.New("wallet already exists for user and currency")
	ErrDuplicateKey       error = errors.New("idempotency key already used")
)
