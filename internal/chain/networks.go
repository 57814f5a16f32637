package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Network describes an EVM-compatible target network. The descriptors are
// constants of the deployment, not runtime configuration.
type Network struct {
	Name          string
	ChainID       *big.Int
	RPCURL        string
	BlockExplorer string
	// PaymentProcessor is the settlement contract deployed on the network.
	PaymentProcessor common.Address
}

var (
	Mainnet = Network{
		Name:             "mainnet",
		ChainID:          big.NewInt(1),
		RPCURL:           "https://ethereum-rpc.publicnode.com",
		BlockExplorer:    "https://etherscan.io",
		PaymentProcessor: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	}

	Testnet = Network{
		Name:             "sepolia",
		ChainID:          big.NewInt(11155111),
		RPCURL:           "https://ethereum-sepolia-rpc.publicnode.com",
		BlockExplorer:    "https://sepolia.etherscan.io",
		PaymentProcessor: common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"),
	}
)

// NetworkByName resolves the configured network selector.
func NetworkByName(name string) (Network, error) {
	switch name {
	case "mainnet":
		return Mainnet, nil
	case "testnet", "sepolia":
		return Testnet, nil
	}
	return Network{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
}

// stablecoin contracts per network, keyed by symbol
var tokenAddresses = map[string]map[string]common.Address{
	Mainnet.Name: {
		"USDC": common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		"USDT": common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"),
		"DAI":  common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"),
	},
	Testnet.Name: {
		"USDC": common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"),
		"LINK": common.HexToAddress("0x779877A7B0D9E8603169DdbD7836e478b4624789"),
	},
}

// TokenAddress looks up a token contract by symbol on a network.
func (n Network) TokenAddress(symbol string) (common.Address, error) {
	addr, ok := tokenAddresses[n.Name][symbol]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s on %s", ErrUnknownToken, symbol, n.Name)
	}
	return addr, nil
}
