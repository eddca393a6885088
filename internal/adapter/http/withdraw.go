package httpadapter

import (
	"encoding/json"
	"net/http"
)

type withdrawRequest struct {
	Amount int64 `json:"amount"`
}

// handleWithdraw moves funds from the campaign to its owner's custody
// balance. Only the campaign owner may withdraw (HTTP 403 otherwise)
// and never more than the current raised amount (HTTP 409).
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.ledger.Withdraw(r.Context(), caller(r), id, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
