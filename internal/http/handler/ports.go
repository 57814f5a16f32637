package handler

import (
	"context"
	"net/http"

	"finledger/internal/chain"
	"finledger/internal/escrow"
	"finledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	CreateWallet(ctx context.Context, ownerUserID, currency string) (ledger.Wallet, error)
	GetWallet(ctx context.Context, id uuid.UUID) (ledger.Wallet, error)
	GetWalletsByUser(ctx context.Context, userID string) ([]ledger.Wallet, error)
	History(ctx context.Context, walletID uuid.UUID) ([]ledger.Transaction, error)
	HistoryByUser(ctx context.Context, userID string) ([]ledger.Transaction, error)
	Deposit(ctx context.Context, p ledger.DepositParams) (ledger.Transaction, error)
	Withdraw(ctx context.Context, p ledger.WithdrawParams) (ledger.Transaction, error)
	Transfer(ctx context.Context, p ledger.TransferParams) (ledger.Transaction, error)
	PayInvoice(ctx context.Context, p ledger.PayInvoiceParams) (ledger.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name EscrowService . EscrowService
type EscrowService interface {
	Fund(ctx context.Context, contractID string, fromWalletID uuid.UUID, idempotencyKey string) (ledger.Transaction, error)
	Release(ctx context.Context, p escrow.ReleaseParams) (ledger.Transaction, error)
	Status(ctx context.Context, contractID string) (escrow.Status, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	Connect(ctx context.Context) (*chain.Session, error)
	TokenDetails(ctx context.Context, session *chain.Session, token common.Address) (chain.TokenDetails, error)
	TokenBalance(ctx context.Context, session *chain.Session, token common.Address, holder *common.Address) (decimal.Decimal, error)
	TransferTokens(ctx context.Context, session *chain.Session, token, to common.Address, amount decimal.Decimal) (*types.Receipt, error)
	ProcessPayment(ctx context.Context, session *chain.Session, p chain.PaymentParams) (*chain.PaymentResult, error)
}
