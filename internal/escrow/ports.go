package escrow

import (
	"context"

	"finledger/internal/contract"
	"finledger/internal/ledger"

	"github.com/google/uuid"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	EscrowLock(ctx context.Context, p ledger.EscrowLockParams) (ledger.Transaction, error)
	EscrowRelease(ctx context.Context, p ledger.EscrowReleaseParams) (ledger.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	CreateWallet(ctx context.Context, wallet ledger.Wallet) (ledger.Wallet, error)
	GetEscrowWallet(ctx context.Context, contractID string) (ledger.Wallet, error)
	GetMainWallet(ctx context.Context, userID, currency string) (ledger.Wallet, error)
	GetWallet(ctx context.Context, id uuid.UUID) (ledger.Wallet, error)
	History(ctx context.Context, walletID uuid.UUID) ([]ledger.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Contracts . Contracts
type Contracts interface {
	Get(ctx context.Context, id string) (contract.Contract, error)
	MarkSettled(ctx context.Context, id string) error
}
