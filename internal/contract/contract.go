package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finledger/internal/db"

	"github.com/shopspring/decimal"
)

var ErrContractNotFound error = errors.New("contract not found")

const (
	StatusActive  = "active"
	StatusSettled = "settled"
)

// Contract mirrors the trade contract owned by the marketplace module.
// The escrow coordinator reads the committed amount and the parties.
type Contract struct {
	ID           string          `gorm:"size:64;primaryKey"`
	BuyerUserID  string          `gorm:"size:64;not null;index"`
	SellerUserID string          `gorm:"size:64;not null;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(32,8);not null"`
	Currency     string          `gorm:"size:3;not null"`
	Status       string          `gorm:"size:10;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Service struct {
	db *db.PostgresDB
}

func NewService(database *db.PostgresDB) *Service {
	return &Service{
		db: database,
	}
}

func (s *Service) Get(ctx context.Context, id string) (Contract, error) {
	var c Contract
	err := s.db.GetBy(ctx, "id", id, &c)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Contract{}, ErrContractNotFound
		}
		return Contract{}, fmt.Errorf("get contract: %w", err)
	}

	return c, nil
}

func (s *Service) MarkSettled(ctx context.Context, id string) error {
	res := s.db.DB.WithContext(ctx).
		Model(&Contract{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": StatusSettled, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("mark contract settled: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrContractNotFound
	}

	return nil
}
