package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type ChainPaymentRequest struct {
	Token     string `json:"token"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	InvoiceID string `json:"invoice_id"`
}

func (r ChainPaymentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Recipient, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.Amount, validation.Required, validation.Match(amountRegex)),
	)
}

type ChainTransferRequest struct {
	Token     string `json:"token"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (r ChainTransferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Recipient, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.Amount, validation.Required, validation.Match(amountRegex)),
	)
}
