package repository

import (
	"time"

	"finledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerUserID string          `gorm:"size:64;not null;index;index:idx_main_wallet,unique,where:type = 'main'"`
	Type        string          `gorm:"size:10;not null"`
	ContractID  *string         `gorm:"size:64;uniqueIndex"`
	Balance     decimal.Decimal `gorm:"type:numeric(32,8);not null"`
	Currency    string          `gorm:"size:3;not null;index:idx_main_wallet,unique,where:type = 'main'"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

type Transaction struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	FromWalletID   *uuid.UUID        `gorm:"type:uuid;index"`
	ToWalletID     *uuid.UUID        `gorm:"type:uuid;index"`
	Amount         decimal.Decimal   `gorm:"type:numeric(32,8);not null"`
	Currency       string            `gorm:"size:3;not null"`
	Type           string            `gorm:"size:20;not null"`
	Status         string            `gorm:"size:10;not null"`
	ContractID     *string           `gorm:"size:64;index"`
	Description    string            `gorm:"type:text"`
	Metadata       map[string]string `gorm:"type:jsonb;serializer:json"`
	IdempotencyKey *string           `gorm:"size:128;uniqueIndex"`
	CreatedAt      time.Time         `gorm:"autoCreateTime;index"`
}

func toWalletModel(w ledger.Wallet) Wallet {
	return Wallet{
		ID:          w.ID,
		OwnerUserID: w.OwnerUserID,
		Type:        string(w.Type),
		ContractID:  w.ContractID,
		Balance:     w.Balance,
		Currency:    w.Currency,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toWalletDomain(w Wallet) ledger.Wallet {
	return ledger.Wallet{
		ID:          w.ID,
		OwnerUserID: w.OwnerUserID,
		Type:        ledger.WalletType(w.Type),
		ContractID:  w.ContractID,
		Balance:     w.Balance,
		Currency:    w.Currency,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toTransactionModel(t ledger.Transaction) Transaction {
	return Transaction{
		ID:             t.ID,
		FromWalletID:   t.FromWalletID,
		ToWalletID:     t.ToWalletID,
		Amount:         t.Amount,
		Currency:       t.Currency,
		Type:           string(t.Type),
		Status:         string(t.Status),
		ContractID:     t.ContractID,
		Description:    t.Description,
		Metadata:       t.Metadata,
		IdempotencyKey: t.IdempotencyKey,
		CreatedAt:      t.CreatedAt,
	}
}

func toTransactionDomain(t Transaction) ledger.Transaction {
	return ledger.Transaction{
		ID:             t.ID,
		FromWalletID:   t.FromWalletID,
		ToWalletID:     t.ToWalletID,
		Amount:         t.Amount,
		Currency:       t.Currency,
		Type:           ledger.TxType(t.Type),
		Status:         ledger.TxStatus(t.Status),
		ContractID:     t.ContractID,
		Description:    t.Description,
		Metadata:       t.Metadata,
		IdempotencyKey: t.IdempotencyKey,
		CreatedAt:      t.CreatedAt,
	}
}

func toTransactionDomains(models []Transaction) []ledger.Transaction {
	records := make([]ledger.Transaction, len(models))
	for i, m := range models {
		records[i] = toTransactionDomain(m)
	}
	return records
}
