package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mise-ops/chobo/internal/report"
)

type Handler struct {
	svc     *report.Service
	storeID string
}

func NewHandler(svc *report.Service, storeID string) *Handler {
	return &Handler{svc: svc, storeID: storeID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/monthly/daily", h.monthlyDaily)
	r.Get("/daily", h.daily)
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	rep, err := h.svc.ComputeMonth(r.Context(), h.storeID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, rep)
}

func (h *Handler) monthlyDaily(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.ComputeMonthlyDaily(r.Context(), h.storeID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, rows)
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "invalid or missing from parameter, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "invalid or missing to parameter, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rows, err := h.svc.ComputeDailyRange(r.Context(), h.storeID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, rows)
}

// monthParam parses the required month query parameter (YYYY-MM).
func monthParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid or missing month parameter, expected YYYY-MM", http.StatusBadRequest)
		return time.Time{}, false
	}

	return month, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, report.ErrInvalidRange), errors.Is(err, report.ErrInvalidMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
