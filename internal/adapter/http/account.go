package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity-ledger/internal/core/domain"
)

type depositRequest struct {
	Amount int64 `json:"amount"`
}

type balanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// handleDeposit tops up the caller's custody balance. Donations spend
// from it; withdrawals pay back into it.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.ledger.Deposit(r.Context(), caller(r), req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBalance reports the custody balance for an address, zero when
// the address has never held funds.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	addr := domain.Address(chi.URLParam(r, "address"))
	balance, err := h.ledger.Balance(r.Context(), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{
		Address: string(domain.NormalizeAddress(addr)),
		Balance: balance,
	})
}
