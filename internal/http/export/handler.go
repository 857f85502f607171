package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mise-ops/chobo/internal/report"
	"github.com/mise-ops/chobo/internal/reportcsv"
)

type Handler struct {
	svc     *report.Service
	storeID string
}

func NewHandler(svc *report.Service, storeID string) *Handler {
	return &Handler{svc: svc, storeID: storeID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly-summary.csv", h.monthlySummary)
	r.Get("/monthly-daily.csv", h.monthlyDaily)
	r.Get("/attendance.csv", h.attendance)
}

func (h *Handler) monthlySummary(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.MonthlySummary(r.Context(), h.storeID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	setCSVHeaders(w, fmt.Sprintf("monthly-summary-%s.csv", summary.YearMonth))

	if err := reportcsv.WriteMonthlySummary(w, summary); err != nil {
		// Headers are already sent; all that is left is logging.
		slog.Error("failed to write monthly summary csv", "error", err)
	}
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

	setCSVHeaders(w, fmt.Sprintf("monthly-daily-%s.csv", month.Format("2006-01")))

	if err := reportcsv.WriteMonthlyDaily(w, rows); err != nil {
		slog.Error("failed to write monthly daily csv", "error", err)
	}
}

func (h *Handler) attendance(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.AttendanceRows(r.Context(), h.storeID, month)
	if err != nil {
		writeError(w, err)
		return
	}

	setCSVHeaders(w, fmt.Sprintf("attendance-%s.csv", month.Format("2006-01")))

	if err := reportcsv.WriteAttendance(w, rows); err != nil {
		slog.Error("failed to write attendance csv", "error", err)
	}
}

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

func setCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
