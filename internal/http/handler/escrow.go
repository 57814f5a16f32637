package handler

import (
	"fmt"
	"net/http"

	"finledger/internal/escrow"
	"finledger/internal/http/payload"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (h *LedgerHandler) HandleFundEscrow(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	contractId := r.PathValue("id")
	if contractId == "" {
		h.respond(w, Response{
			Message: "Could not fund escrow",
			Error:   "contract id parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing contract id parameter",
			"handler", FundEscrow,
			"request_id", requestId)
		return
	}

	var req payload.FundEscrowRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not fund escrow",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", FundEscrow,
			"request_id", requestId)
		return
	}

	fromWalletId, _ := uuid.Parse(req.FromWalletID)
	tx, err := h.escrow.Fund(r.Context(), contractId, fromWalletId, req.IdempotencyKey)
	if err != nil {
		h.respondDomainError(w, "Could not fund escrow", err, FundEscrow, requestId)
		return
	}

	h.logs.Infow("escrow funded",
		"contract_id", contractId,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"handler", FundEscrow,
		"request_id", requestId)

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleReleaseEscrow(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	contractId := r.PathValue("id")
	if contractId == "" {
		h.respond(w, Response{
			Message: "Could not release escrow",
			Error:   "contract id parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing contract id parameter",
			"handler", ReleaseEscrow,
			"request_id", requestId)
		return
	}

	var req payload.ReleaseEscrowRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not release escrow",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ReleaseEscrow,
			"request_id", requestId)
		return
	}

	amount, _ := decimal.NewFromString(req.Amount)
	params := escrow.ReleaseParams{
		ContractID:     contractId,
		Beneficiary:    escrow.Beneficiary(req.Type),
		Amount:         amount,
		IdempotencyKey: req.IdempotencyKey,
	}
	if req.ToWalletID != "" {
		toWalletId, _ := uuid.Parse(req.ToWalletID)
		params.ToWalletID = &toWalletId
	}

	tx, err := h.escrow.Release(r.Context(), params)
	if err != nil {
		h.respondDomainError(w, "Could not release escrow", err, ReleaseEscrow, requestId)
		return
	}

	h.logs.Infow("escrow released",
		"contract_id", contractId,
		"beneficiary", req.Type,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"handler", ReleaseEscrow,
		"request_id", requestId)

	h.respond(w, Response{Data: toTransactionView(tx)}, http.StatusCreated, requestId)
}

func (h *LedgerHandler) HandleEscrowStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	contractId := r.PathValue("id")
	if contractId == "" {
		h.respond(w, Response{
			Message: "Could not retrieve escrow status",
			Error:   "contract id parameter is required",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("missing contract id parameter",
			"handler", EscrowStatus,
			"request_id", requestId)
		return
	}

	status, err := h.escrow.Status(r.Context(), contractId)
	if err != nil {
		h.respondDomainError(w, "Could not retrieve escrow status", err, EscrowStatus, requestId)
		return
	}

	h.respond(w, Response{Data: toEscrowStatusView(status)}, http.StatusOK, requestId)
}
