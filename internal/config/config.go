package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	chainNetworkEnvKey = "CHAIN_NETWORK"
	chainRPCEnvKey     = "CHAIN_RPC_URL"
)

type App struct {
	Port         string
	DBConnection string
	ChainNetwork string
	// ChainRPCURL overrides the selected network's default RPC endpoint when set.
	ChainRPCURL string
}

func NewAppConfig() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	network, ok := os.LookupEnv(chainNetworkEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainNetworkEnvKey)
	}

	// optional, the selected network carries a default endpoint
	rpcURL := os.Getenv(chainRPCEnvKey)

	return App{
		Port:         port,
		DBConnection: dbConn,
		ChainNetwork: network,
		ChainRPCURL:  rpcURL,
	}, nil
}
