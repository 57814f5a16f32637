package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"finledger/internal/db"
	"finledger/internal/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerRepository is the durable ledger store. It is the sole authority
// on balances: every balance mutation happens together with the append of
// the transaction record, inside one database transaction with the
// affected wallet rows locked.
type LedgerRepository struct {
	db *db.PostgresDB
}

func NewLedgerRepository(database *db.PostgresDB) *LedgerRepository {
	return &LedgerRepository{
		db: database,
	}
}

func (r *LedgerRepository) MigrateTables() error {
	if err := r.db.MigrateTable(&Wallet{}, &Transaction{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *LedgerRepository) CreateWallet(ctx context.Context, wallet ledger.Wallet) (ledger.Wallet, error) {
	model := toWalletModel(wallet)
	if err := r.db.DB.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ledger.Wallet{}, ledger.ErrWalletExists
		}
		return ledger.Wallet{}, fmt.Errorf("insert wallet: %w", err)
	}

	return toWalletDomain(model), nil
}

func (r *LedgerRepository) GetWallet(ctx context.Context, id uuid.UUID) (ledger.Wallet, error) {
	var model Wallet
	err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Wallet{}, ledger.ErrWalletNotFound
		}
		return ledger.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}

	return toWalletDomain(model), nil
}

func (r *LedgerRepository) GetWalletsByUser(ctx context.Context, userID string) ([]ledger.Wallet, error) {
	var models []Wallet
	err := r.db.DB.WithContext(ctx).
		Where("owner_user_id = ?", userID).
		Order("created_at asc").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("get wallets by user: %w", err)
	}

	wallets := make([]ledger.Wallet, len(models))
	for i, m := range models {
		wallets[i] = toWalletDomain(m)
	}
	return wallets, nil
}

func (r *LedgerRepository) GetMainWallet(ctx context.Context, userID, currency string) (ledger.Wallet, error) {
	var model Wallet
	err := r.db.DB.WithContext(ctx).
		Where("owner_user_id = ? AND currency = ? AND type = ?", userID, currency, string(ledger.WalletTypeMain)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Wallet{}, ledger.ErrWalletNotFound
		}
		return ledger.Wallet{}, fmt.Errorf("get main wallet: %w", err)
	}

	return toWalletDomain(model), nil
}

func (r *LedgerRepository) GetEscrowWallet(ctx context.Context, contractID string) (ledger.Wallet, error) {
	var model Wallet
	err := r.db.DB.WithContext(ctx).
		Where("contract_id = ? AND type = ?", contractID, string(ledger.WalletTypeEscrow)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Wallet{}, ledger.ErrWalletNotFound
		}
		return ledger.Wallet{}, fmt.Errorf("get escrow wallet: %w", err)
	}

	return toWalletDomain(model), nil
}

// Append applies a transaction's balance effects and inserts the record as
// one atomic unit. Wallet rows are locked in ascending id order so two
// concurrent opposite-direction transfers cannot deadlock. The funds and
// currency checks run inside the critical section; on any violation the
// whole unit rolls back.
func (r *LedgerRepository) Append(ctx context.Context, rec ledger.Transaction) (ledger.Transaction, error) {
	model := toTransactionModel(rec)

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := make(map[uuid.UUID]*Wallet, 2)
		for _, id := range lockOrder(rec.FromWalletID, rec.ToWalletID) {
			var w Wallet
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&w, "id = ?", id).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ledger.ErrWalletNotFound
				}
				return fmt.Errorf("lock wallet: %w", err)
			}
			if w.Currency != rec.Currency {
				return ledger.ErrCurrencyMismatch
			}
			locked[id] = &w
		}

		if rec.FromWalletID != nil {
			from := locked[*rec.FromWalletID]
			if from.Balance.LessThan(rec.Amount) {
				return ledger.ErrInsufficientFunds
			}
			from.Balance = from.Balance.Sub(rec.Amount)
		}
		if rec.ToWalletID != nil {
			to := locked[*rec.ToWalletID]
			to.Balance = to.Balance.Add(rec.Amount)
		}

		for _, id := range lockOrder(rec.FromWalletID, rec.ToWalletID) {
			w := locked[id]
			err := tx.Model(&Wallet{}).Where("id = ?", w.ID).Update("balance", w.Balance).Error
			if err != nil {
				return fmt.Errorf("update wallet balance: %w", err)
			}
		}

		if err := tx.Create(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ledger.ErrDuplicateKey
			}
			return fmt.Errorf("insert transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return ledger.Transaction{}, err
	}

	return toTransactionDomain(model), nil
}

// History returns every transaction touching a wallet, oldest first,
// stable on ties by transaction id.
func (r *LedgerRepository) History(ctx context.Context, walletID uuid.UUID) ([]ledger.Transaction, error) {
	var models []Transaction
	err := r.db.DB.WithContext(ctx).
		Where("from_wallet_id = ? OR to_wallet_id = ?", walletID, walletID).
		Order("created_at asc, id asc").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("get wallet history: %w", err)
	}

	return toTransactionDomains(models), nil
}

// HistoryByUser returns every transaction touching any wallet owned by
// the user, across currencies, oldest first.
func (r *LedgerRepository) HistoryByUser(ctx context.Context, userID string) ([]ledger.Transaction, error) {
	owned := r.db.DB.Model(&Wallet{}).Select("id").Where("owner_user_id = ?", userID)

	var models []Transaction
	err := r.db.DB.WithContext(ctx).
		Where("from_wallet_id IN (?) OR to_wallet_id IN (?)", owned, owned).
		Order("created_at asc, id asc").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}

	return toTransactionDomains(models), nil
}

func (r *LedgerRepository) FindByIdempotencyKey(ctx context.Context, idempotencyKey string) (ledger.Transaction, bool, error) {
	var model Transaction
	err := r.db.DB.WithContext(ctx).First(&model, "idempotency_key = ?", idempotencyKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledger.Transaction{}, false, nil
		}
		return ledger.Transaction{}, false, fmt.Errorf("find by idempotency key: %w", err)
	}

	return toTransactionDomain(model), true, nil
}

// lockOrder returns the distinct wallet ids of a record sorted ascending.
func lockOrder(from, to *uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, 2)
	if from != nil {
		ids = append(ids, *from)
	}
	if to != nil && (from == nil || *to != *from) {
		ids = append(ids, *to)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
