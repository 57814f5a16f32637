package ledger

import (
	"context"
	"finledger/internal/invoice"

	"github.com/google/uuid"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	CreateWallet(ctx context.Context, wallet Wallet) (Wallet, error)
	GetWallet(ctx context.Context, id uuid.UUID) (Wallet, error)
	GetWalletsByUser(ctx context.Context, userID string) ([]Wallet, error)
	GetMainWallet(ctx context.Context, userID, currency string) (Wallet, error)
	GetEscrowWallet(ctx context.Context, contractID string) (Wallet, error)
	Append(ctx context.Context, tx Transaction) (Transaction, error)
	History(ctx context.Context, walletID uuid.UUID) ([]Transaction, error)
	HistoryByUser(ctx context.Context, userID string) ([]Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (Transaction, bool, error)
}

//counterfeiter:generate -o fake -fake-name InvoiceService . InvoiceService
type InvoiceService interface {
	Get(ctx context.Context, id string) (invoice.Invoice, error)
	MarkPaid(ctx context.Context, id string) error
}
