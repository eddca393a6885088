package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"
)

type donateRequest struct {
	Amount int64 `json:"amount"`
}

type donationResponse struct {
	CampaignID int64     `json:"campaign_id"`
	Seq        int64     `json:"seq"`
	Donor      string    `json:"donor"`
	Amount     int64     `json:"amount"`
	TxRef      string    `json:"tx_ref"`
	CreatedAt  time.Time `json:"created_at"`
}

// handleDonate records a donation from the caller to the campaign. The
// transfer from the caller's custody balance is coupled to the
// bookkeeping, so an uncovered donation fails with HTTP 409 and changes
// nothing.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.ledger.Donate(r.Context(), caller(r), id, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListDonations returns a campaign's donation history in order.
func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	donations, err := h.ledger.ListDonations(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]donationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, donationResponse{
			CampaignID: d.CampaignID,
			Seq:        d.Seq,
			Donor:      string(d.Donor),
			Amount:     d.Amount,
			TxRef:      d.TxRef,
			CreatedAt:  d.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
