package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finledger/internal/db"

	"github.com/shopspring/decimal"
)

var ErrInvoiceNotFound error = errors.New("invoice not found")

const (
	StatusIssued = "issued"
	StatusPaid   = "paid"
)

// Invoice is owned by the dashboard's invoicing module. The ledger only
// reads amount, currency and the counterparties, and flips the status to
// paid once the settling transfer commits.
type Invoice struct {
	ID           string          `gorm:"size:64;primaryKey"`
	SellerUserID string          `gorm:"size:64;not null;index"`
	BuyerUserID  string          `gorm:"size:64;not null;index"`
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

func (s *Service) Get(ctx context.Context, id string) (Invoice, error) {
	var inv Invoice
	err := s.db.GetBy(ctx, "id", id, &inv)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Invoice{}, ErrInvoiceNotFound
		}
		return Invoice{}, fmt.Errorf("get invoice: %w", err)
	}

	return inv, nil
}

func (s *Service) MarkPaid(ctx context.Context, id string) error {
	res := s.db.DB.WithContext(ctx).
		Model(&Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": StatusPaid, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("mark invoice paid: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}
