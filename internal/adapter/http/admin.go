package httpadapter

import (
	"encoding/json"
	"net/http"

	"charity-ledger/internal/core/domain"
)

type transferAdminRequest struct {
	NewAdmin string `json:"new_admin"`
}

type adminResponse struct {
	Admin string `json:"admin"`
}

// handleGetAdmin returns the current admin identity.
func (h *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.access.Admin(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, adminResponse{Admin: string(admin)})
}

// handleTransferAdmin hands the admin role to a new identity. Only the
// current admin may call it (HTTP 403); the zero address is rejected
// with HTTP 400.
func (h *Handler) handleTransferAdmin(w http.ResponseWriter, r *http.Request) {
	var req transferAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.access.TransferAdminRole(r.Context(), caller(r), domain.Address(req.NewAdmin)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
