package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"charity-ledger/internal/core/domain"
	"charity-ledger/internal/core/port"
)

// callerHeader carries the authenticated caller identity. The HTTP
// layer trusts it as already verified upstream (a gateway or signing
// wallet); the core never reads ambient identity.
const callerHeader = "X-Caller-Address"

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP: it decodes requests, resolves the caller identity and maps
// typed ledger failures onto status codes. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	ledger    port.CampaignLedger
	access    port.AccessControl
	converter port.PriceConverter
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(ledger port.CampaignLedger, access port.AccessControl, converter port.PriceConverter, logger *slog.Logger) *Handler {
	h := &Handler{ledger: ledger, access: access, converter: converter, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns/{id}/donations", h.handleDonate)
		r.Get("/campaigns/{id}/donations", h.handleListDonations)
		r.Post("/campaigns/{id}/withdrawals", h.handleWithdraw)
		r.Post("/accounts/deposit", h.handleDeposit)
		r.Get("/accounts/{address}", h.handleBalance)
		r.Get("/admin", h.handleGetAdmin)
		r.Post("/admin/transfer", h.handleTransferAdmin)
		r.Get("/convert", h.handleConvert)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// caller extracts the authenticated caller identity from the request.
func caller(r *http.Request) domain.Address {
	return domain.Address(r.Header.Get(callerHeader))
}

// writeJSON encodes v with an application/json content type.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the ledger's error taxonomy onto HTTP status codes.
// Unrecognised errors are logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrNotCampaignOwner), errors.Is(err, port.ErrNotAdmin):
		status = http.StatusForbidden
	case errors.Is(err, port.ErrInsufficientFunds):
		status = http.StatusConflict
	case errors.Is(err, port.ErrOracleUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, port.ErrEmptyCampaignText),
		errors.Is(err, port.ErrInvalidTarget),
		errors.Is(err, port.ErrDonationTooSmall),
		errors.Is(err, port.ErrInvalidAmount),
		errors.Is(err, port.ErrZeroAddress),
		errors.Is(err, port.ErrZeroAdminAddress):
		status = http.StatusBadRequest
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), status)
}
