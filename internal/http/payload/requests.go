package payload

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
)

var (
	amountRegex   = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

func validUUID(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := uuid.Parse(s)
	return err
}

type CreateWalletRequest struct {
	OwnerUserID string `json:"owner_user_id"`
	Currency    string `json:"currency"`
}

func (r CreateWalletRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OwnerUserID, validation.Required),
		validation.Field(&r.Currency, validation.Required, validation.Match(currencyRegex)),
	)
}

// MovementRequest covers deposit and withdrawal bodies.
type MovementRequest struct {
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Description    string `json:"description"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (r MovementRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&r.Currency, validation.Required, validation.Match(currencyRegex)),
	)
}

type TransferRequest struct {
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Description    string `json:"description"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (r TransferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&r.Currency, validation.Required, validation.Match(currencyRegex)),
	)
}

type FundEscrowRequest struct {
	FromWalletID   string `json:"from_wallet_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (r FundEscrowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FromWalletID, validation.Required, validation.By(validUUID)),
	)
}

type ReleaseEscrowRequest struct {
	ToWalletID     string `json:"to_wallet_id"`
	Type           string `json:"type"`
	Amount         string `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (r ReleaseEscrowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ToWalletID, validation.By(validUUID)),
		validation.Field(&r.Type, validation.Required, validation.In("seller", "buyer")),
		validation.Field(&r.Amount, validation.Required, validation.Match(amountRegex)),
	)
}

type PayInvoiceRequest struct {
	FromWalletID   string `json:"from_wallet_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (r PayInvoiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FromWalletID, validation.Required, validation.By(validUUID)),
	)
}
