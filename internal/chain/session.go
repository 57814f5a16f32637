package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Session is an established provider/signer pair bound to one network. It
// is passed explicitly to every bridge operation; only one chain operation
// per session runs at a time.
type Session struct {
	Address common.Address
	ChainID *big.Int
	Network Network

	client EthClient
	signTx func(ctx context.Context, tx *types.Transaction) (*types.Transaction, error)
	mu     sync.Mutex
}

func (s *Session) Info() ConnectionInfo {
	return ConnectionInfo{
		Address:     s.Address,
		ChainID:     s.ChainID.String(),
		NetworkName: s.Network.Name,
	}
}

// ConnectStrategy attempts to produce a signing session on the target
// network. Strategies run in order; any failure moves on to the next one.
type ConnectStrategy interface {
	Name() string
	Connect(ctx context.Context, network Network) (*Session, error)
}

// DefaultStrategies returns the designed degradation path: the external
// wallet first, then a fresh single-use custodial keypair over a direct
// RPC connection. The provider may be nil.
func DefaultStrategies(provider WalletProvider) []ConnectStrategy {
	return []ConnectStrategy{
		externalWalletStrategy{provider: provider},
		custodialStrategy{dial: dialEthClient},
	}
}

type externalWalletStrategy struct {
	provider WalletProvider
}

func (s externalWalletStrategy) Name() string {
	return "external_wallet"
}

func (s externalWalletStrategy) Connect(ctx context.Context, network Network) (*Session, error) {
	if s.provider == nil {
		return nil, errors.New("no external wallet present")
	}

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, errors.New("external wallet returned no accounts")
	}

	current, err := s.provider.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read wallet chain id: %w", err)
	}

	if current.Cmp(network.ChainID) != 0 {
		if err := s.alignNetwork(ctx, network); err != nil {
			return nil, err
		}
	}

	return &Session{
		Address: accounts[0],
		ChainID: network.ChainID,
		Network: network,
		client:  s.provider.Client(),
		signTx: func(ctx context.Context, tx *types.Transaction) (*types.Transaction, error) {
			return s.provider.SignTx(ctx, tx, network.ChainID)
		},
	}, nil
}

// alignNetwork asks the wallet to switch to the target chain, registering
// the network with the wallet first if it is unknown there.
func (s externalWalletStrategy) alignNetwork(ctx context.Context, network Network) error {
	if err := s.provider.SwitchChain(ctx, network.ChainID); err == nil {
		return nil
	}

	if err := s.provider.AddChain(ctx, network); err != nil {
		return fmt.Errorf("add network %s to wallet: %w", network.Name, err)
	}
	if err := s.provider.SwitchChain(ctx, network.ChainID); err != nil {
		return fmt.Errorf("switch wallet to %s: %w", network.Name, err)
	}

	return nil
}

type custodialStrategy struct {
	dial func(url string) (EthClient, error)
}

func (s custodialStrategy) Name() string {
	return "custodial"
}

func (s custodialStrategy) Connect(ctx context.Context, network Network) (*Session, error) {
	client, err := s.dial(network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", network.RPCURL, err)
	}

	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate custodial key: %w", err)
	}

	signer := types.LatestSignerForChainID(network.ChainID)
	return &Session{
		Address: crypto.PubkeyToAddress(privateKey.PublicKey),
		ChainID: network.ChainID,
		Network: network,
		client:  client,
		signTx: func(_ context.Context, tx *types.Transaction) (*types.Transaction, error) {
			return types.SignTx(tx, signer, privateKey)
		},
	}, nil
}

func dialEthClient(url string) (EthClient, error) {
	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, err
	}
	return client, nil
}
