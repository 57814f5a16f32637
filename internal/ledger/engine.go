package ledger

import (
	"context"
	"fmt"

	"finledger/internal/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine validates balance-affecting operations and delegates each one to
// the store as a single atomic unit. It never retries; retries are a
// caller concern carried by the idempotency key.
type Engine struct {
	logs     *zap.SugaredLogger
	store    Store
	invoices InvoiceService
}

func NewEngine(logger *zap.SugaredLogger, store Store, invoices InvoiceService) *Engine {
	return &Engine{
		logs:     logger,
		store:    store,
		invoices: invoices,
	}
}

// CreateWallet provisions a main wallet for a user. The wallet currency is
// fixed here; every later transaction must match it.
func (e *Engine) CreateWallet(ctx context.Context, ownerUserID, currency string) (Wallet, error) {
	if _, err := e.store.GetMainWallet(ctx, ownerUserID, currency); err == nil {
		return Wallet{}, ErrWalletExists
	}

	wallet, err := e.store.CreateWallet(ctx, Wallet{
		ID:          uuid.New(),
		OwnerUserID: ownerUserID,
		Type:        WalletTypeMain,
		Balance:     decimal.Zero,
		Currency:    currency,
	})
	if err != nil {
		return Wallet{}, fmt.Errorf("create wallet: %w", err)
	}

	e.logs.Infow("wallet created", "wallet_id", wallet.ID, "user_id", ownerUserID, "currency", currency)
	return wallet, nil
}

func (e *Engine) GetWallet(ctx context.Context, id uuid.UUID) (Wallet, error) {
	return e.store.GetWallet(ctx, id)
}

func (e *Engine) GetWalletsByUser(ctx context.Context, userID string) ([]Wallet, error) {
	return e.store.GetWalletsByUser(ctx, userID)
}

func (e *Engine) History(ctx context.Context, walletID uuid.UUID) ([]Transaction, error) {
	return e.store.History(ctx, walletID)
}

func (e *Engine) HistoryByUser(ctx context.Context, userID string) ([]Transaction, error) {
	return e.store.HistoryByUser(ctx, userID)
}

// Deposit credits a wallet from an external source.
func (e *Engine) Deposit(ctx context.Context, p DepositParams) (Transaction, error) {
	if !p.Amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}

	if replay, err := e.replayed(ctx, p.IdempotencyKey); err != nil || replay != nil {
		return deref(replay), err
	}

	wallet, err := e.store.GetWallet(ctx, p.WalletID)
	if err != nil {
		return Transaction{}, err
	}
	if wallet.Currency != p.Currency {
		return Transaction{}, ErrCurrencyMismatch
	}

	tx, err := e.store.Append(ctx, Transaction{
		ID:             uuid.New(),
		ToWalletID:     &p.WalletID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Type:           TxTypeDeposit,
		Status:         TxStatusCompleted,
		Description:    p.Description,
		Metadata:       p.Metadata,
		IdempotencyKey: key(p.IdempotencyKey),
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("append deposit: %w", err)
	}

	e.logs.Infow("deposit completed", "wallet_id", p.WalletID, "amount", p.Amount, "currency", p.Currency)
	return tx, nil
}

// Withdraw debits a wallet toward an external destination. The balance
// check happens inside the store's critical section.
func (e *Engine) Withdraw(ctx context.Context, p WithdrawParams) (Transaction, error) {
	if !p.Amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}

	if replay, err := e.replayed(ctx, p.IdempotencyKey); err != nil || replay != nil {
		return deref(replay), err
	}

	wallet, err := e.store.GetWallet(ctx, p.WalletID)
	if err != nil {
		return Transaction{}, err
	}
	if wallet.Currency != p.Currency {
		return Transaction{}, ErrCurrencyMismatch
	}

	tx, err := e.store.Append(ctx, Transaction{
		ID:             uuid.New(),
		FromWalletID:   &p.WalletID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Type:           TxTypeWithdrawal,
		Status:         TxStatusCompleted,
		Description:    p.Description,
		Metadata:       p.Metadata,
		IdempotencyKey: key(p.IdempotencyKey),
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("append withdrawal: %w", err)
	}

	e.logs.Infow("withdrawal completed", "wallet_id", p.WalletID, "amount", p.Amount, "currency", p.Currency)
	return tx, nil
}

// Transfer moves funds between two wallets as one record; both legs commit
// together or not at all.
func (e *Engine) Transfer(ctx context.Context, p TransferParams) (Transaction, error) {
	tx, err := e.move(ctx, TxTypeTransfer, nil, p)
	if err != nil {
		return Transaction{}, err
	}

	e.logs.Infow("transfer completed",
		"from_wallet_id", p.FromWalletID,
		"to_wallet_id", p.ToWalletID,
		"amount", p.Amount,
		"currency", p.Currency)
	return tx, nil
}

// EscrowLock moves funds from a payer's main wallet into a contract's
// escrow wallet. State rules live in the escrow coordinator.
func (e *Engine) EscrowLock(ctx context.Context, p EscrowLockParams) (Transaction, error) {
	tx, err := e.move(ctx, TxTypeEscrowLock, &p.ContractID, TransferParams{
		FromWalletID:   p.FromWalletID,
		ToWalletID:     p.ToWalletID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Description:    p.Description,
		IdempotencyKey: p.IdempotencyKey,
	})
	if err != nil {
		return Transaction{}, err
	}

	e.logs.Infow("escrow lock completed", "contract_id", p.ContractID, "amount", p.Amount)
	return tx, nil
}

// EscrowRelease moves funds out of a contract's escrow wallet to a
// counterparty's main wallet.
func (e *Engine) EscrowRelease(ctx context.Context, p EscrowReleaseParams) (Transaction, error) {
	tx, err := e.move(ctx, TxTypeEscrowRelease, &p.ContractID, TransferParams{
		FromWalletID:   p.FromWalletID,
		ToWalletID:     p.ToWalletID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Description:    p.Description,
		IdempotencyKey: p.IdempotencyKey,
	})
	if err != nil {
		return Transaction{}, err
	}

	e.logs.Infow("escrow release completed", "contract_id", p.ContractID, "amount", p.Amount)
	return tx, nil
}

// PayInvoice settles an invoice as a transfer from the payer's wallet to
// the seller's main wallet, tagged with the invoice id. The invoice status
// flip is a collaborator side effect outside the ledger's atomic unit.
func (e *Engine) PayInvoice(ctx context.Context, p PayInvoiceParams) (Transaction, error) {
	if replay, err := e.replayed(ctx, p.IdempotencyKey); err != nil || replay != nil {
		return deref(replay), err
	}

	inv, err := e.invoices.Get(ctx, p.InvoiceID)
	if err != nil {
		return Transaction{}, fmt.Errorf("resolve invoice: %w", err)
	}
	if inv.Status == invoice.StatusPaid {
		return Transaction{}, ErrInvoiceAlreadyPaid
	}

	payee, err := e.store.GetMainWallet(ctx, inv.SellerUserID, inv.Currency)
	if err != nil {
		return Transaction{}, fmt.Errorf("resolve payee wallet: %w", err)
	}

	tx, err := e.move(ctx, TxTypeTransfer, nil, TransferParams{
		FromWalletID:   p.FromWalletID,
		ToWalletID:     payee.ID,
		Amount:         inv.Amount,
		Currency:       inv.Currency,
		Description:    fmt.Sprintf("payment for invoice %s", inv.ID),
		Metadata:       map[string]string{MetadataKeyInvoiceID: inv.ID},
		IdempotencyKey: p.IdempotencyKey,
	})
	if err != nil {
		return Transaction{}, err
	}

	if err := e.invoices.MarkPaid(ctx, inv.ID); err != nil {
		// the transfer is committed at this point, report and surface
		e.logs.Errorw("invoice transfer committed but status update failed", "invoice_id", inv.ID, "error", err)
		return tx, fmt.Errorf("mark invoice paid: %w", err)
	}

	e.logs.Infow("invoice paid", "invoice_id", inv.ID, "amount", inv.Amount, "currency", inv.Currency)
	return tx, nil
}

func (e *Engine) move(ctx context.Context, txType TxType, contractID *string, p TransferParams) (Transaction, error) {
	if !p.Amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if p.FromWalletID == p.ToWalletID {
		return Transaction{}, ErrSameWallet
	}

	if replay, err := e.replayed(ctx, p.IdempotencyKey); err != nil || replay != nil {
		return deref(replay), err
	}

	from, err := e.store.GetWallet(ctx, p.FromWalletID)
	if err != nil {
		return Transaction{}, err
	}
	to, err := e.store.GetWallet(ctx, p.ToWalletID)
	if err != nil {
		return Transaction{}, err
	}
	if from.Currency != p.Currency || to.Currency != p.Currency {
		return Transaction{}, ErrCurrencyMismatch
	}

	tx, err := e.store.Append(ctx, Transaction{
		ID:             uuid.New(),
		FromWalletID:   &p.FromWalletID,
		ToWalletID:     &p.ToWalletID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Type:           txType,
		Status:         TxStatusCompleted,
		ContractID:     contractID,
		Description:    p.Description,
		Metadata:       p.Metadata,
		IdempotencyKey: key(p.IdempotencyKey),
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("append %s: %w", txType, err)
	}

	return tx, nil
}

// replayed returns the previously recorded transaction for a key, if any.
// A replayed operation is not applied a second time.
func (e *Engine) replayed(ctx context.Context, idempotencyKey string) (*Transaction, error) {
	if idempotencyKey == "" {
		return nil, nil
	}

	tx, found, err := e.store.FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("lookup idempotency key: %w", err)
	}
	if !found {
		return nil, nil
	}

	e.logs.Infow("idempotent replay", "idempotency_key", idempotencyKey, "transaction_id", tx.ID)
	return &tx, nil
}

func key(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(tx *Transaction) Transaction {
	if tx == nil {
		return Transaction{}
	}
	return *tx
}
