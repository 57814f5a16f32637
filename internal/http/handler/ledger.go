package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"finledger/internal/contract"
	"finledger/internal/escrow"
	"finledger/internal/http/handler/middleware"
	"finledger/internal/http/payload"
	"finledger/internal/invoice"
	"finledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	CreateWallet     = "POST /wallets"
	GetWallet        = "GET /wallets/{id}"
	GetUserWallets   = "GET /users/{id}/wallets"
	GetUserHistory   = "GET /users/{id}/transactions"
	GetWalletHistory = "GET /wallets/{id}/transactions"
	Deposit          = "POST /wallets/{id}/deposit"
	Withdraw         = "POST /wallets/{id}/withdraw"
	Transfer         = "POST /wallets/{from}/transfer/{to}"
	FundEscrow       = "POST /contracts/{id}/fund"
	ReleaseEscrow    = "POST /contracts/{id}/release"
	EscrowStatus     = "GET /contracts/{id}/escrow"
	PayInvoice       = "POST /invoices/{id}/pay"
)

type LedgerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	ledger           LedgerService
	escrow           EscrowService
}

func NewLedgerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, ledgerService LedgerService, escrowService EscrowService) *LedgerHandler {
	return &LedgerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		ledger:           ledgerService,
		escrow:           escrowService,
	}
}

func (h *LedgerHandler) HandleCreateWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateWalletRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateWallet,
			"request_id", requestId)
		return
	}

	wallet, err := h.ledger.CreateWallet(r.Context(), req.OwnerUserID, req.Currency)
	if err != nil {
		h.respondDomainError(w, "Could not create wallet", err, CreateWallet, requestId)
		return
	}

	h.logs.Infow("wallet created",
		"wallet_id", wallet.ID,
		"owner_user_id", wallet.OwnerUserID,
		"currency", wallet.Currency,
		"handler", CreateWallet,
		"request_id", requestId)

	h.respond(w, Response{Data: toWalletView(wallet)}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	walletId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve wallet",
			Error:   fmt.Errorf("parse wallet id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse wallet id",
			"error", err,
			"handler", GetWallet,
			"request_id", requestId)
		return
	}

	wallet, err := h.ledger.GetWallet(r.Context(), walletId)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve wallet", err, GetWallet, requestId)
		return
	}

	h.respond(w, Response{Data: toWalletView(wallet)}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleGetUserWallets(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userId := r.PathValue("id")
	if userId == "" {
		h.respond(w, Response{
			Message: "Could not retrieve wallets",
			Error:   "user id parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing user id parameter",
			"handler", GetUserWallets,
			"request_id", requestId)
		return
	}

	wallets, err := h.ledger.GetWalletsByUser(r.Context(), userId)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve wallets", err, GetUserWallets, requestId)
		return
	}

	resp := map[string][]walletView{
		"wallets": toWalletViews(wallets),
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleWalletHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	walletId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse wallet id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse wallet id",
			"error", err,
			"handler", GetWalletHistory,
			"request_id", requestId)
		return
	}

	transactions, err := h.ledger.History(r.Context(), walletId)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve transactions", err, GetWalletHistory, requestId)
		return
	}

	resp := map[string][]transactionView{
		"transactions": toTransactionViews(transactions),
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleUserHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	userId := r.PathValue("id")

	if userId == "" {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   "user id is required",
		}, http.StatusBadRequest, requestId)
		return
	}

	transactions, err := h.ledger.HistoryByUser(r.Context(), userId)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve transactions", err, GetUserHistory, requestId)
		return
	}

	resp := map[string][]transactionView{
		"transactions": toTransactionViews(transactions),
	}
	h.respond(w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *LedgerHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	walletId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not deposit",
			Error:   fmt.Errorf("parse wallet id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse wallet id",
			"error", err,
			"handler", Deposit,
			"request_id", requestId)
		return
	}

	var req payload.MovementRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not deposit",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Deposit,
			"request_id", requestId)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)
	tx, err := h.ledger.Deposit(r.Context(), ledger.DepositParams{
		WalletID:       walletId,
		Amount:         amount,
		Currency:       req.Currency,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.respondDomainError(w, "Could not deposit", err, Deposit, requestId)
		return
	}

	h.logs.Infow("deposit recorded",
		"wallet_id", walletId,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"handler", Deposit,
		"request_id", requestId)

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	walletId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not withdraw",
			Error:   fmt.Errorf("parse wallet id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse wallet id",
			"error", err,
			"handler", Withdraw,
			"request_id", requestId)
		return
	}

	var req payload.MovementRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not withdraw",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Withdraw,
			"request_id", requestId)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)
	tx, err := h.ledger.Withdraw(r.Context(), ledger.WithdrawParams{
		WalletID:       walletId,
		Amount:         amount,
		Currency:       req.Currency,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.respondDomainError(w, "Could not withdraw", err, Withdraw, requestId)
		return
	}

	h.logs.Infow("withdrawal recorded",
		"wallet_id", walletId,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"handler", Withdraw,
		"request_id", requestId)

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	fromId, err := uuid.Parse(r.PathValue("from"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not transfer",
			Error:   fmt.Errorf("parse source wallet id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse source wallet id",
			"error", err,
			"handler", Transfer,
			"request_id", requestId)
		return
	}

	toId, err := uuid.Parse(r.PathValue("to"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not transfer",
			Error:   fmt.Errorf("parse destination wallet id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse destination wallet id",
			"error", err,
			"handler", Transfer,
			"request_id", requestId)
		return
	}

	var req payload.TransferRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not transfer",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Transfer,
			"request_id", requestId)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)
	tx, err := h.ledger.Transfer(r.Context(), ledger.TransferParams{
		FromWalletID:   fromId,
		ToWalletID:     toId,
		Amount:         amount,
		Currency:       req.Currency,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.respondDomainError(w, "Could not transfer", err, Transfer, requestId)
		return
	}

	h.logs.Infow("transfer recorded",
		"from_wallet_id", fromId,
		"to_wallet_id", toId,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"handler", Transfer,
		"request_id", requestId)

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandlePayInvoice(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	invoiceId := r.PathValue("id")
	if invoiceId == "" {
		h.respond(w, Response{
			Message: "Could not pay invoice",
			Error:   "invoice id parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing invoice id parameter",
			"handler", PayInvoice,
			"request_id", requestId)
		return
	}

	var req payload.PayInvoiceRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not pay invoice",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", PayInvoice,
			"request_id", requestId)
		return
	}

	fromWalletId, _ := uuid.Parse(req.FromWalletID)
	tx, err := h.ledger.PayInvoice(r.Context(), ledger.PayInvoiceParams{
		InvoiceID:      invoiceId,
		FromWalletID:   fromWalletId,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.respondDomainError(w, "Could not pay invoice", err, PayInvoice, requestId)
		return
	}

	h.logs.Infow("invoice paid",
		"invoice_id", invoiceId,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"handler", PayInvoice,
		"request_id", requestId)

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusCreated, requestId)
}

// respondDomainError maps service errors onto HTTP status codes. Domain
// invariant violations surface the sentinel text so callers can tell what
// rule was broken; everything else hides behind a generic message.
func (h *LedgerHandler) respondDomainError(w http.ResponseWriter, message string, err error, route, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError

	switch {
	case errors.Is(err, ledger.ErrWalletNotFound),
		errors.Is(err, invoice.ErrInvoiceNotFound),
		errors.Is(err, contract.ErrContractNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrCurrencyMismatch),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameWallet),
		errors.Is(err, ledger.ErrInvoiceAlreadyPaid),
		errors.Is(err, ledger.ErrWalletExists),
		errors.Is(err, ledger.ErrDuplicateKey),
		errors.Is(err, escrow.ErrEscrowNotFunded),
		errors.Is(err, escrow.ErrOverRelease),
		errors.Is(err, escrow.ErrUnknownBeneficiary),
		errors.Is(err, escrow.ErrNotBeneficiary):
		httpCode = http.StatusUnprocessableEntity
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

func (h *LedgerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
