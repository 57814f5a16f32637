package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"finledger/internal/chain"
	"finledger/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ChainConnect      = "POST /chain/connect"
	ChainTokenDetails = "GET /chain/tokens/{symbol}"
	ChainTokenBalance = "GET /chain/tokens/{symbol}/balance"
	ChainTransfer     = "POST /chain/transfers"
	ChainPayment      = "POST /chain/payments"
)

type ChainHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	bridge           ChainService
	network          chain.Network

	mu      sync.RWMutex
	session *chain.Session
}

func NewChainHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, bridge ChainService, network chain.Network) *ChainHandler {
	return &ChainHandler{
		logs:             logger,
		requestValidator: requestValidator,
		bridge:           bridge,
		network:          network,
	}
}

func (h *ChainHandler) currentSession() *chain.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *ChainHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, err := h.bridge.Connect(r.Context())
	if err != nil {
		h.respondChainError(w, "Could not connect to network", err, ChainConnect, requestId)
		return
	}

	h.mu.Lock()
	h.session = session
	h.mu.Unlock()

	info := session.Info()
	h.logs.Infow("chain session established",
		"address", info.Address.Hex(),
		"chain_id", info.ChainID,
		"network", info.NetworkName,
		"handler", ChainConnect,
		"request_id", requestId)

	resp := map[string]string{
		"address":  info.Address.Hex(),
		"chain_id": info.ChainID,
		"network":  info.NetworkName,
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *ChainHandler) HandleTokenDetails(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	tokenAddr, err := h.network.TokenAddress(r.PathValue("symbol"))
	if err != nil {
		h.respondChainError(w, "Could not retrieve token details", err, ChainTokenDetails, requestId)
		return
	}

	details, err := h.bridge.TokenDetails(r.Context(), h.currentSession(), tokenAddr)
	if err != nil {
		h.respondChainError(w, "Could not retrieve token details", err, ChainTokenDetails, requestId)
		return
	}

	resp := map[string]any{
		"address":  details.Address.Hex(),
		"name":     details.Name,
		"symbol":   details.Symbol,
		"decimals": details.Decimals,
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *ChainHandler) HandleTokenBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	tokenAddr, err := h.network.TokenAddress(r.PathValue("symbol"))
	if err != nil {
		h.respondChainError(w, "Could not retrieve token balance", err, ChainTokenBalance, requestId)
		return
	}

	balance, err := h.bridge.TokenBalance(r.Context(), h.currentSession(), tokenAddr, nil)
	if err != nil {
		h.respondChainError(w, "Could not retrieve token balance", err, ChainTokenBalance, requestId)
		return
	}

	resp := map[string]string{
		"symbol":  r.PathValue("symbol"),
		"balance": balance.String(),
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *ChainHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ChainTransferRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not transfer tokens",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ChainTransfer,
			"request_id", requestId)
		return
	}

	tokenAddr, err := h.network.TokenAddress(req.Token)
	if err != nil {
		h.respondChainError(w, "Could not transfer tokens", err, ChainTransfer, requestId)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)
	receipt, err := h.bridge.TransferTokens(r.Context(), h.currentSession(), tokenAddr, common.HexToAddress(req.Recipient), amount)
	if err != nil {
		h.respondChainError(w, "Could not transfer tokens", err, ChainTransfer, requestId)
		return
	}

	h.logs.Infow("tokens transferred",
		"token", req.Token,
		"recipient", req.Recipient,
		"amount", req.Amount,
		"tx_hash", receipt.TxHash.Hex(),
		"handler", ChainTransfer,
		"request_id", requestId)

	resp := map[string]any{
		"tx_hash":      receipt.TxHash.Hex(),
		"block_number": receipt.BlockNumber.Uint64(),
	}
	h.respond(w, Response{Data: resp}, http.StatusCreated, requestId)
}

func (h *ChainHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ChainPaymentRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not process payment",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ChainPayment,
			"request_id", requestId)
		return
	}

	tokenAddr, err := h.network.TokenAddress(req.Token)
	if err != nil {
		h.respondChainError(w, "Could not process payment", err, ChainPayment, requestId)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)
	result, err := h.bridge.ProcessPayment(r.Context(), h.currentSession(), chain.PaymentParams{
		Processor: h.network.PaymentProcessor,
		Token:     tokenAddr,
		Recipient: common.HexToAddress(req.Recipient),
		Amount:    amount,
		InvoiceID: req.InvoiceID,
	})
	if err != nil {
		h.respondChainError(w, "Could not process payment", err, ChainPayment, requestId)
		return
	}

	h.logs.Infow("payment processed",
		"token", req.Token,
		"recipient", req.Recipient,
		"amount", req.Amount,
		"invoice_id", req.InvoiceID,
		"payment_tx", result.PaymentTxHash.Hex(),
		"handler", ChainPayment,
		"request_id", requestId)

	resp := map[string]any{
		"approval_tx_hash": result.ApprovalTxHash.Hex(),
		"payment_tx_hash":  result.PaymentTxHash.Hex(),
		"block_number":     result.BlockNumber,
	}
	h.respond(w, Response{Data: resp}, http.StatusCreated, requestId)
}

func (h *ChainHandler) respondChainError(w http.ResponseWriter, message string, err error, route, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	var payErr *chain.PaymentError
	switch {
	case errors.Is(err, chain.ErrUnknownToken):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, chain.ErrProviderNotSet):
		httpCode = http.StatusConflict
		resp.Error = "no active session, connect first"
	case errors.Is(err, chain.ErrAmountPrecision):
		httpCode = http.StatusUnprocessableEntity
		resp.Error = err.Error()
	case errors.As(err, &payErr):
		httpCode = http.StatusBadGateway
		resp.Error = payErr.Error()
	case errors.Is(err, chain.ErrConnectionFailed),
		errors.Is(err, chain.ErrReverted),
		errors.Is(err, chain.ErrNetwork):
		httpCode = http.StatusBadGateway
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *ChainHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
