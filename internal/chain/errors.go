package chain

import (
	"errors"
	"fmt"
)

var (
	ErrProviderNotSet   error = errors.New("no chain session established")
	ErrConnectionFailed error = errors.New("could not establish a network connection")
	ErrNetwork          error = errors.New("network request failed")
	ErrReverted         error = errors.New("contract execution reverted")
	ErrUnknownNetwork   error = errors.New("unknown network")
	ErrUnknownToken     error = errors.New("unknown token symbol")
	ErrAmountPrecision  error = errors.New("amount has more decimal places than the token supports")
)

// Phase identifies which half of the approve-then-transfer protocol an
// error belongs to.
type Phase string

const (
	PhaseApprove  Phase = "approve"
	PhaseTransfer Phase = "transfer"
)

// PaymentError wraps a failure of one payment phase. The transfer phase
// never runs when the approval phase fails; an approval that confirmed
// before a later failure stays outstanding on-chain.
type PaymentError struct {
	Phase Phase
	Err   error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment %s phase: %s", e.Phase, e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
