// Package web exposes the JSON API and mounts the messaging webhook. POST
// bodies for the collection endpoints are whole JSON arrays (full-collection
// replace semantics); any other shape is a 400.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice-bot/internal/app"
	"backoffice-bot/internal/core"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler holds the ApplicationService, the chi router, and the webhook
// endpoint handler.
type Handler struct {
	svc     app.ApplicationService
	webhook http.Handler
	logger  *zap.Logger
}

// NewHandler creates and wires the chi router with all routes. webhook is
// mounted at the messaging callback path; pass nil to disable it.
func NewHandler(svc app.ApplicationService, webhook http.Handler, allowedOrigins string, logger *zap.Logger) http.Handler {
	h := &Handler{svc: svc, webhook: webhook, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	r.Get("/api/inventory", h.listInventory)
	r.Post("/api/inventory", h.replaceInventory)

	r.Get("/api/purchases", h.listPurchases)
	r.Post("/api/purchases", h.replacePurchases)
	r.Post("/api/purchases/import", h.importPurchases)

	r.Get("/api/quotations", h.listQuotations)
	r.Post("/api/quotations", h.replaceQuotations)
	r.Post("/api/quotations/{id}/convert", h.convertQuotation)

	if webhook != nil {
		r.Post("/api/line/webhook", webhook.ServeHTTP)
	}

	return r
}

type replaceResult struct {
	Status string   `json:"status"`
	Count  int      `json:"count"`
	Logs   []string `json:"logs,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, orEmpty(h.svc.ListInventory(r.Context())))
}

func (h *Handler) replaceInventory(w http.ResponseWriter, r *http.Request) {
	var items []core.InventoryItem
	if !decodeArray(w, r, &items) {
		return
	}
	h.svc.ReplaceInventory(r.Context(), items)
	writeJSON(w, replaceResult{Status: "success", Count: len(items)})
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, orEmpty(h.svc.ListPurchases(r.Context())))
}

func (h *Handler) replacePurchases(w http.ResponseWriter, r *http.Request) {
	var txs []core.PurchaseTransaction
	if !decodeArray(w, r, &txs) {
		return
	}
	h.svc.ReplacePurchases(r.Context(), txs)
	writeJSON(w, replaceResult{Status: "success", Count: len(txs)})
}

func (h *Handler) importPurchases(w http.ResponseWriter, r *http.Request) {
	var txs []core.PurchaseTransaction
	if !decodeArray(w, r, &txs) {
		return
	}
	logs := h.svc.ImportPurchases(r.Context(), txs)
	writeJSON(w, replaceResult{Status: "success", Count: len(txs), Logs: logs})
}

func (h *Handler) listQuotations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, orEmpty(h.svc.ListQuotations(r.Context())))
}

func (h *Handler) replaceQuotations(w http.ResponseWriter, r *http.Request) {
	var qts []core.Quotation
	if !decodeArray(w, r, &qts) {
		return
	}
	h.svc.ReplaceQuotations(r.Context(), qts)
	writeJSON(w, replaceResult{Status: "success", Count: len(qts)})
}

func (h *Handler) convertQuotation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Body is optional: {"paymentSlip": "..."} attaches PO evidence.
	var body struct {
		PaymentSlip string `json:"paymentSlip"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	tx, err := h.svc.ConvertQuotation(r.Context(), id, body.PaymentSlip)
	switch {
	case errors.Is(err, core.ErrQuotationNotFound):
		writeError(w, r, "quotation not found", "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, core.ErrAlreadyConverted):
		writeError(w, r, "quotation already converted", "ALREADY_CONVERTED", http.StatusConflict)
	case err != nil:
		h.logger.Error("quotation conversion failed", zap.String("id", id), zap.Error(err))
		writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
	default:
		writeJSON(w, tx)
	}
}

// decodeArray decodes the request body into v (a pointer to a slice) and
// writes a 400 on any shape other than a JSON array, or a 413 when the body
// exceeds the RequestBodyLimit.
func decodeArray(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid data format", "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}

// orEmpty keeps list responses as [] instead of null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
