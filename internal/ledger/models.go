package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletType string

const (
	WalletTypeMain   WalletType = "main"
	WalletTypeEscrow WalletType = "escrow"
)

type TxType string

const (
	TxTypeDeposit       TxType = "deposit"
	TxTypeWithdrawal    TxType = "withdrawal"
	TxTypeTransfer      TxType = "transfer"
	TxTypeEscrowLock    TxType = "escrow_lock"
	TxTypeEscrowRelease TxType = "escrow_release"
)

type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusCompleted TxStatus = "completed"
	TxStatusFailed    TxStatus = "failed"
)

// Wallet is a balance holder. Main wallets belong to a user, one per
// currency. Escrow wallets belong to a trade contract and hold funds
// locked against it.
type Wallet struct {
	ID          uuid.UUID
	OwnerUserID string
	Type        WalletType
	ContractID  *string
	Balance     decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Transaction is an immutable ledger record. Balances are derived from
// the completed records touching a wallet, never edited directly.
type Transaction struct {
	ID             uuid.UUID
	FromWalletID   *uuid.UUID
	ToWalletID     *uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Type           TxType
	Status         TxStatus
	ContractID     *string
	Description    string
	Metadata       map[string]string
	IdempotencyKey *string
	CreatedAt      time.Time
}

// MetadataKeyInvoiceID tags a transfer that settles an invoice.
const MetadataKeyInvoiceID = "invoice_id"

// MetadataKeyReceiptHash links a ledger record to an on-chain receipt.
const MetadataKeyReceiptHash = "receipt_hash"

type DepositParams struct {
	WalletID       uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}

type WithdrawParams struct {
	WalletID       uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}

type TransferParams struct {
	FromWalletID   uuid.UUID
	ToWalletID     uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}

type EscrowLockParams struct {
	ContractID     string
	FromWalletID   uuid.UUID
	ToWalletID     uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Description    string
	IdempotencyKey string
}

type EscrowReleaseParams struct {
	ContractID     string
	FromWalletID   uuid.UUID
	ToWalletID     uuid.UUID
	Amount         decimal.Decimal
	Currency       string
	Description    string
	IdempotencyKey string
}

type PayInvoiceParams struct {
	InvoiceID      string
	FromWalletID   uuid.UUID
	IdempotencyKey string
}
