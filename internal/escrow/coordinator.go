package escrow

import (
	"context"
	"errors"
	"fmt"

	"finledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEscrowNotFunded    error = errors.New("escrow is not funded")
	ErrOverRelease        error = errors.New("release amount exceeds escrow balance")
	ErrUnknownBeneficiary error = errors.New("beneficiary must be seller or buyer")
	ErrNotBeneficiary     error = errors.New("wallet does not belong to the named beneficiary")
)

type Beneficiary string

const (
	BeneficiarySeller Beneficiary = "seller"
	BeneficiaryBuyer  Beneficiary = "buyer"
)

// State of a contract's escrow over one funding cycle.
type State string

const (
	StateUnfunded          State = "unfunded"
	StateFunded            State = "funded"
	StatePartiallyReleased State = "partially_released"
	StateSettled           State = "settled"
)

type Status struct {
	ContractID string
	WalletID   *uuid.UUID
	State      State
	Balance    decimal.Decimal
	Currency   string
}

type ReleaseParams struct {
	ContractID     string
	Beneficiary    Beneficiary
	ToWalletID     *uuid.UUID
	Amount         decimal.Decimal
	IdempotencyKey string
}

// Coordinator orchestrates contract-scoped escrow wallets: creation,
// funding from a payer's main wallet and release to a counterparty. All
// balance movement goes through the transaction engine.
type Coordinator struct {
	logs      *zap.SugaredLogger
	ledger    Ledger
	store     Store
	contracts Contracts
}

func NewCoordinator(logger *zap.SugaredLogger, ledgerEngine Ledger, store Store, contracts Contracts) *Coordinator {
	return &Coordinator{
		logs:      logger,
		ledger:    ledgerEngine,
		store:     store,
		contracts: contracts,
	}
}

// Fund locks the contract's full committed amount from the payer's main
// wallet into the contract's escrow wallet, creating the wallet on first
// use. Re-funding a settled escrow starts a new cycle on the same wallet.
func (c *Coordinator) Fund(ctx context.Context, contractID string, fromWalletID uuid.UUID, idempotencyKey string) (ledger.Transaction, error) {
	tradeContract, err := c.contracts.Get(ctx, contractID)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("resolve contract: %w", err)
	}

	escrowWallet, err := c.store.GetEscrowWallet(ctx, contractID)
	if errors.Is(err, ledger.ErrWalletNotFound) {
		escrowWallet, err = c.store.CreateWallet(ctx, ledger.Wallet{
			ID: uuid.New(),
			// escrow wallets are owned by the contract, not a user
			OwnerUserID: contractID,
			Type:        ledger.WalletTypeEscrow,
			ContractID:  &contractID,
			Balance:     decimal.Zero,
			Currency:    tradeContract.Currency,
		})
		if err != nil {
			return ledger.Transaction{}, fmt.Errorf("create escrow wallet: %w", err)
		}
		c.logs.Infow("escrow wallet created", "contract_id", contractID, "wallet_id", escrowWallet.ID)
	} else if err != nil {
		return ledger.Transaction{}, err
	}

	tx, err := c.ledger.EscrowLock(ctx, ledger.EscrowLockParams{
		ContractID:     contractID,
		FromWalletID:   fromWalletID,
		ToWalletID:     escrowWallet.ID,
		Amount:         tradeContract.Amount,
		Currency:       tradeContract.Currency,
		Description:    fmt.Sprintf("escrow funding for contract %s", contractID),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return ledger.Transaction{}, err
	}

	c.logs.Infow("escrow funded", "contract_id", contractID, "amount", tradeContract.Amount)
	return tx, nil
}

// Release moves part or all of the escrow balance to the named
// counterparty's main wallet. Over-release is rejected, not clamped.
func (c *Coordinator) Release(ctx context.Context, p ReleaseParams) (ledger.Transaction, error) {
	if !p.Amount.IsPositive() {
		return ledger.Transaction{}, ledger.ErrInvalidAmount
	}

	tradeContract, err := c.contracts.Get(ctx, p.ContractID)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("resolve contract: %w", err)
	}

	beneficiaryUserID := ""
	switch p.Beneficiary {
	case BeneficiarySeller:
		beneficiaryUserID = tradeContract.SellerUserID
	case BeneficiaryBuyer:
		beneficiaryUserID = tradeContract.BuyerUserID
	default:
		return ledger.Transaction{}, ErrUnknownBeneficiary
	}

	escrowWallet, err := c.store.GetEscrowWallet(ctx, p.ContractID)
	if errors.Is(err, ledger.ErrWalletNotFound) {
		return ledger.Transaction{}, ErrEscrowNotFunded
	} else if err != nil {
		return ledger.Transaction{}, err
	}

	if escrowWallet.Balance.IsZero() {
		return ledger.Transaction{}, ErrEscrowNotFunded
	}
	if p.Amount.GreaterThan(escrowWallet.Balance) {
		return ledger.Transaction{}, ErrOverRelease
	}

	toWallet, err := c.store.GetMainWallet(ctx, beneficiaryUserID, escrowWallet.Currency)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("resolve beneficiary wallet: %w", err)
	}
	if p.ToWalletID != nil && *p.ToWalletID != toWallet.ID {
		return ledger.Transaction{}, ErrNotBeneficiary
	}

	tx, err := c.ledger.EscrowRelease(ctx, ledger.EscrowReleaseParams{
		ContractID:     p.ContractID,
		FromWalletID:   escrowWallet.ID,
		ToWalletID:     toWallet.ID,
		Amount:         p.Amount,
		Currency:       escrowWallet.Currency,
		Description:    fmt.Sprintf("escrow release to %s for contract %s", p.Beneficiary, p.ContractID),
		IdempotencyKey: p.IdempotencyKey,
	})
	if err != nil {
		// the balance read above is a snapshot; a concurrent release can
		// still drain the wallet before ours commits
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			return ledger.Transaction{}, ErrOverRelease
		}
		return ledger.Transaction{}, err
	}

	c.logs.Infow("escrow released",
		"contract_id", p.ContractID,
		"beneficiary", p.Beneficiary,
		"amount", p.Amount)

	if p.Amount.Equal(escrowWallet.Balance) {
		if err := c.contracts.MarkSettled(ctx, p.ContractID); err != nil {
			return tx, fmt.Errorf("mark contract settled: %w", err)
		}
		c.logs.Infow("contract settled", "contract_id", p.ContractID)
	}

	return tx, nil
}

// Status derives the escrow state for a contract from the escrow wallet's
// balance and release history.
func (c *Coordinator) Status(ctx context.Context, contractID string) (Status, error) {
	escrowWallet, err := c.store.GetEscrowWallet(ctx, contractID)
	if errors.Is(err, ledger.ErrWalletNotFound) {
		return Status{ContractID: contractID, State: StateUnfunded, Balance: decimal.Zero}, nil
	} else if err != nil {
		return Status{}, err
	}

	history, err := c.store.History(ctx, escrowWallet.ID)
	if err != nil {
		return Status{}, err
	}

	// a cycle starts with the lock that takes the balance off zero, so a
	// re-funded escrow does not inherit release history from a settled cycle
	cycleStart := 0
	running := decimal.Zero
	for i, tx := range history {
		if tx.ToWalletID != nil && *tx.ToWalletID == escrowWallet.ID {
			if tx.Type == ledger.TxTypeEscrowLock && running.IsZero() {
				cycleStart = i
			}
			running = running.Add(tx.Amount)
		}
		if tx.FromWalletID != nil && *tx.FromWalletID == escrowWallet.ID {
			running = running.Sub(tx.Amount)
		}
	}

	released := false
	for _, tx := range history[cycleStart:] {
		if tx.Type == ledger.TxTypeEscrowRelease && tx.Status == ledger.TxStatusCompleted {
			released = true
			break
		}
	}

	state := StateUnfunded
	switch {
	case escrowWallet.Balance.IsPositive() && released:
		state = StatePartiallyReleased
	case escrowWallet.Balance.IsPositive():
		state = StateFunded
	case len(history) > 0:
		state = StateSettled
	}

	return Status{
		ContractID: contractID,
		WalletID:   &escrowWallet.ID,
		State:      state,
		Balance:    escrowWallet.Balance,
		Currency:   escrowWallet.Currency,
	}, nil
}
