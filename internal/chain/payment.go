package chain

import (
	"context"
	"fmt"
)

// ProcessPayment runs the two-phase stablecoin payment protocol: approve
// the processor contract for the amount, await confirmation, then invoke
// the processor's payment function (the invoice-tagged variant when an
// invoice id is supplied). The transfer phase is only attempted after the
// approval confirms.
func (b *Bridge) ProcessPayment(ctx context.Context, session *Session, p PaymentParams) (*PaymentResult, error) {
	if session == nil {
		return nil, ErrProviderNotSet
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	units, err := b.toBaseUnits(ctx, session, p.Token, p.Amount)
	if err != nil {
		return nil, &PaymentError{Phase: PhaseApprove, Err: err}
	}

	approveData, err := b.erc20.Pack("approve", p.Processor, units)
	if err != nil {
		return nil, &PaymentError{Phase: PhaseApprove, Err: fmt.Errorf("pack approve: %w", err)}
	}

	approvalReceipt, err := b.submit(ctx, session, p.Token, approveData, tokenGasLimit)
	if err != nil {
		return nil, &PaymentError{Phase: PhaseApprove, Err: err}
	}

	b.logs.Infow("payment approval confirmed",
		"processor", p.Processor.Hex(),
		"token", p.Token.Hex(),
		"tx_hash", approvalReceipt.TxHash.Hex())

	var payData []byte
	if p.InvoiceID != "" {
		payData, err = b.processor.Pack("processPaymentWithInvoice", p.Token, p.Recipient, units, p.InvoiceID)
	} else {
		payData, err = b.processor.Pack("processPayment", p.Token, p.Recipient, units)
	}
	if err != nil {
		return nil, &PaymentError{Phase: PhaseTransfer, Err: fmt.Errorf("pack payment call: %w", err)}
	}

	paymentReceipt, err := b.submit(ctx, session, p.Processor, payData, processorGasLimit)
	if err != nil {
		return nil, &PaymentError{Phase: PhaseTransfer, Err: err}
	}

	b.logs.Infow("payment confirmed",
		"processor", p.Processor.Hex(),
		"recipient", p.Recipient.Hex(),
		"amount", p.Amount,
		"invoice_id", p.InvoiceID,
		"tx_hash", paymentReceipt.TxHash.Hex())

	return &PaymentResult{
		ApprovalTxHash: approvalReceipt.TxHash,
		PaymentTxHash:  paymentReceipt.TxHash,
		BlockNumber:    paymentReceipt.BlockNumber.Uint64(),
	}, nil
}
