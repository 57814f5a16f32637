package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finledger/internal/chain"
	"finledger/internal/config"
	"finledger/internal/contract"
	"finledger/internal/db"
	"finledger/internal/escrow"
	"finledger/internal/http/handler"
	"finledger/internal/http/handler/middleware"
	"finledger/internal/http/payload"
	"finledger/internal/http/server"
	"finledger/internal/invoice"
	"finledger/internal/ledger"
	"finledger/internal/repository"
	"finledger/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("finledger", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnection)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate ledger tables", "error", err)
		return err
	}

	err = dbConn.MigrateTable(&invoice.Invoice{}, &contract.Contract{})
	if err != nil {
		logger.Errorw("failed to migrate collaborator tables", "error", err)
		return err
	}

	// collaborator services
	invoiceService := invoice.NewService(dbConn)
	contractService := contract.NewService(dbConn)

	// transaction engine
	engine := ledger.NewEngine(logger, repo, invoiceService)

	// escrow coordinator
	coordinator := escrow.NewCoordinator(logger, engine, repo, contractService)

	// chain bridge
	network, err := chain.NetworkByName(config.ChainNetwork)
	if err != nil {
		logger.Errorw("failed to resolve chain network", "error", err)
		return err
	}
	if config.ChainRPCURL != "" {
		network.RPCURL = config.ChainRPCURL
	}

	bridge, err := chain.NewBridge(logger, network, chain.DefaultStrategies(nil))
	if err != nil {
		logger.Errorw("failed to create chain bridge", "error", err)
		return err
	}

	// handlers
	ledgerHlr := handler.NewLedgerHandler(
		logger,
		payload.DecodeValidator{},
		engine,
		coordinator)

	chainHlr := handler.NewChainHandler(
		logger,
		payload.DecodeValidator{},
		bridge,
		network)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.CreateWallet, ledgerHlr.HandleCreateWallet)
	mux.HandleFunc(handler.GetWallet, ledgerHlr.HandleGetWallet)
	mux.HandleFunc(handler.GetUserWallets, ledgerHlr.HandleGetUserWallets)
	mux.HandleFunc(handler.GetUserHistory, ledgerHlr.HandleUserHistory)
	mux.HandleFunc(handler.GetWalletHistory, ledgerHlr.HandleWalletHistory)
	mux.HandleFunc(handler.Deposit, ledgerHlr.HandleDeposit)
	mux.HandleFunc(handler.Withdraw, ledgerHlr.HandleWithdraw)
	mux.HandleFunc(handler.Transfer, ledgerHlr.HandleTransfer)
	mux.HandleFunc(handler.FundEscrow, ledgerHlr.HandleFundEscrow)
	mux.HandleFunc(handler.ReleaseEscrow, ledgerHlr.HandleReleaseEscrow)
	mux.HandleFunc(handler.EscrowStatus, ledgerHlr.HandleEscrowStatus)
	mux.HandleFunc(handler.PayInvoice, ledgerHlr.HandlePayInvoice)
	mux.HandleFunc(handler.ChainConnect, chainHlr.HandleConnect)
	mux.HandleFunc(handler.ChainTokenDetails, chainHlr.HandleTokenDetails)
	mux.HandleFunc(handler.ChainTokenBalance, chainHlr.HandleTokenBalance)
	mux.HandleFunc(handler.ChainTransfer, chainHlr.HandleTransfer)
	mux.HandleFunc(handler.ChainPayment, chainHlr.HandlePayment)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
