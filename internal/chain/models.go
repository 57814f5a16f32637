package chain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type TokenDetails struct {
	Address  common.Address
	Name     string
	Symbol   string
	Decimals uint8
}

// ConnectionInfo is the terminal result of a successful connect chain.
type ConnectionInfo struct {
	Address     common.Address
	ChainID     string
	NetworkName string
}

type PaymentParams struct {
	Processor common.Address
	Token     common.Address
	Recipient common.Address
	Amount    decimal.Decimal
	// InvoiceID, when set, selects the invoice-tagged processor variant.
	InvoiceID string
}

type PaymentResult struct {
	ApprovalTxHash common.Hash
	PaymentTxHash  common.Hash
	BlockNumber    uint64
}
