package handler

import (
	"time"

	"finledger/internal/escrow"
	"finledger/internal/ledger"
)

type walletView struct {
	ID          string  `json:"id"`
	OwnerUserID string  `json:"owner_user_id"`
	Type        string  `json:"type"`
	ContractID  *string `json:"contract_id,omitempty"`
	Balance     string  `json:"balance"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"created_at"`
}

type transactionView struct {
	ID           string            `json:"id"`
	FromWalletID *string           `json:"from_wallet_id,omitempty"`
	ToWalletID   *string           `json:"to_wallet_id,omitempty"`
	Amount       string            `json:"amount"`
	Currency     string            `json:"currency"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	ContractID   *string           `json:"contract_id,omitempty"`
	Description  string            `json:"description,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    string            `json:"created_at"`
}

type escrowStatusView struct {
	ContractID string  `json:"contract_id"`
	WalletID   *string `json:"wallet_id,omitempty"`
	State      string  `json:"state"`
	Balance    string  `json:"balance"`
	Currency   string  `json:"currency,omitempty"`
}

func toWalletView(w ledger.Wallet) walletView {
	return walletView{
		ID:          w.ID.String(),
		OwnerUserID: w.OwnerUserID,
		Type:        string(w.Type),
		ContractID:  w.ContractID,
		Balance:     w.Balance.String(),
		Currency:    w.Currency,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
	}
}

func toWalletViews(wallets []ledger.Wallet) []walletView {
	views := make([]walletView, 0, len(wallets))
	for _, w := range wallets {
		views = append(views, toWalletView(w))
	}
	return views
}

func toTransactionView(tx ledger.Transaction) transactionView {
	view := transactionView{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.String(),
		Currency:    tx.Currency,
		Type:        string(tx.Type),
		Status:      string(tx.Status),
		ContractID:  tx.ContractID,
		Description: tx.Description,
		Metadata:    tx.Metadata,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.FromWalletID != nil {
		id := tx.FromWalletID.String()
		view.FromWalletID = &id
	}
	if tx.ToWalletID != nil {
		id := tx.ToWalletID.String()
		view.ToWalletID = &id
	}
	return view
}

func toTransactionViews(txs []ledger.Transaction) []transactionView {
	views := make([]transactionView, 0, len(txs))
	for _, tx := range txs {
		views = append(views, toTransactionView(tx))
	}
	return views
}

func toEscrowStatusView(s escrow.Status) escrowStatusView {
	view := escrowStatusView{
		ContractID: s.ContractID,
		State:      string(s.State),
		Balance:    s.Balance.String(),
		Currency:   s.Currency,
	}
	if s.WalletID != nil {
		id := s.WalletID.String()
		view.WalletID = &id
	}
	return view
}
