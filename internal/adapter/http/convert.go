package httpadapter

import (
	"net/http"
	"strconv"
)

type convertResponse struct {
	Amount int64 `json:"amount"`
	// ReferenceAmount is an 18-decimal fixed-point integer and can
	// exceed int64, so it travels as a decimal string.
	ReferenceAmount string `json:"reference_amount"`
}

// handleConvert values a native currency amount at the feed's latest
// price. The `amount` query parameter is required. Feed failures
// produce HTTP 502.
func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil {
		http.Error(w, "invalid 'amount' parameter", http.StatusBadRequest)
		return
	}
	ref, err := h.converter.ConversionRate(r.Context(), amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, convertResponse{
		Amount:          amount,
		ReferenceAmount: ref.String(),
	})
}
