package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	tokenGasLimit     uint64 = 100_000
	processorGasLimit uint64 = 250_000

	receiptPollInterval = 2 * time.Second
)

// Bridge executes token payments on an EVM network, outside the internal
// ledger but reconcilable with it through transaction metadata.
type Bridge struct {
	logs       *zap.SugaredLogger
	network    Network
	strategies []ConnectStrategy
	erc20      abi.ABI
	processor  abi.ABI
	pollEvery  time.Duration
}

func NewBridge(logger *zap.SugaredLogger, network Network, strategies []ConnectStrategy) (*Bridge, error) {
	erc20, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	processor, err := abi.JSON(strings.NewReader(processorABI))
	if err != nil {
		return nil, fmt.Errorf("parse processor abi: %w", err)
	}

	return &Bridge{
		logs:       logger,
		network:    network,
		strategies: strategies,
		erc20:      erc20,
		processor:  processor,
		pollEvery:  receiptPollInterval,
	}, nil
}

// Connect tries each connection strategy in order and returns the first
// session established. ErrConnectionFailed is signaled only when the last
// strategy (the custodial fallback) cannot construct a provider either.
func (b *Bridge) Connect(ctx context.Context) (*Session, error) {
	for _, strategy := range b.strategies {
		session, err := strategy.Connect(ctx, b.network)
		if err != nil {
			b.logs.Infow("connection strategy failed, falling back",
				"strategy", strategy.Name(),
				"network", b.network.Name,
				"error", err)
			continue
		}

		b.logs.Infow("chain session established",
			"strategy", strategy.Name(),
			"address", session.Address.Hex(),
			"chain_id", session.ChainID.String())
		return session, nil
	}

	return nil, ErrConnectionFailed
}

// TokenDetails reads name, symbol and decimals from the token contract.
func (b *Bridge) TokenDetails(ctx context.Context, session *Session, token common.Address) (TokenDetails, error) {
	if session == nil {
		return TokenDetails{}, ErrProviderNotSet
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	details := TokenDetails{Address: token}

	if err := b.read(ctx, session, token, "name", &details.Name); err != nil {
		return TokenDetails{}, err
	}
	if err := b.read(ctx, session, token, "symbol", &details.Symbol); err != nil {
		return TokenDetails{}, err
	}
	if err := b.read(ctx, session, token, "decimals", &details.Decimals); err != nil {
		return TokenDetails{}, err
	}

	return details, nil
}

// TokenBalance returns the holder's balance scaled by the token decimals.
// A nil holder defaults to the session address.
func (b *Bridge) TokenBalance(ctx context.Context, session *Session, token common.Address, holder *common.Address) (decimal.Decimal, error) {
	if session == nil {
		return decimal.Zero, ErrProviderNotSet
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	address := session.Address
	if holder != nil {
		address = *holder
	}

	var raw *big.Int
	if err := b.read(ctx, session, token, "balanceOf", &raw, address); err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		raw = big.NewInt(0)
	}

	var decimals uint8
	if err := b.read(ctx, session, token, "decimals", &decimals); err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromBigInt(raw, -int32(decimals)), nil
}

// TransferTokens executes a single on-chain token transfer and waits for
// one confirmation.
func (b *Bridge) TransferTokens(ctx context.Context, session *Session, token, to common.Address, amount decimal.Decimal) (*types.Receipt, error) {
	if session == nil {
		return nil, ErrProviderNotSet
	}
	session.mu.Lock()
	defer session.mu.Unlock()

	units, err := b.toBaseUnits(ctx, session, token, amount)
	if err != nil {
		return nil, err
	}

	data, err := b.erc20.Pack("transfer", to, units)
	if err != nil {
		return nil, fmt.Errorf("pack transfer: %w", err)
	}

	receipt, err := b.submit(ctx, session, token, data, tokenGasLimit)
	if err != nil {
		return nil, err
	}

	b.logs.Infow("token transfer confirmed",
		"token", token.Hex(),
		"to", to.Hex(),
		"amount", amount,
		"tx_hash", receipt.TxHash.Hex())
	return receipt, nil
}

// read performs an eth_call against a token contract method and unpacks
// its single output into out.
func (b *Bridge) read(ctx context.Context, session *Session, contract common.Address, method string, out any, args ...any) error {
	data, err := b.erc20.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("pack %s: %w", method, err)
	}

	result, err := session.client.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("%w: call %s: %s", ErrNetwork, method, err)
	}
	if len(result) == 0 {
		// contract without the method or empty state, leave the zero value
		return nil
	}

	if err := b.erc20.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("unpack %s: %w", method, err)
	}

	return nil
}

// submit signs, sends and waits for one confirmation. A receipt with
// failed status surfaces as ErrReverted.
func (b *Bridge) submit(ctx context.Context, session *Session, to common.Address, data []byte, gasLimit uint64) (*types.Receipt, error) {
	nonce, err := session.client.PendingNonceAt(ctx, session.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: pending nonce: %s", ErrNetwork, err)
	}

	gasPrice, err := session.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: suggest gas price: %s", ErrNetwork, err)
	}

	tx := types.NewTransaction(nonce, to, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := session.signTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := session.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("%w: send transaction: %s", ErrNetwork, err)
	}

	receipt, err := b.waitMined(ctx, session, signedTx.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%w: tx %s", ErrReverted, signedTx.Hash().Hex())
	}

	return receipt, nil
}

func (b *Bridge) waitMined(ctx context.Context, session *Session, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(b.pollEvery)
	defer ticker.Stop()

	for {
		receipt, err := session.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%w: transaction receipt %s: %s", ErrNetwork, hash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: waiting for %s: %s", ErrNetwork, hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// toBaseUnits converts a display amount into the token's integer base
// units using its on-chain decimals.
func (b *Bridge) toBaseUnits(ctx context.Context, session *Session, token common.Address, amount decimal.Decimal) (*big.Int, error) {
	var decimals uint8
	if err := b.read(ctx, session, token, "decimals", &decimals); err != nil {
		return nil, err
	}

	scaled := amount.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return nil, ErrAmountPrecision
	}

	return scaled.BigInt(), nil
}
