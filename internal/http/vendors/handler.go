package vendor

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/vendors"
)

type Handler struct {
	repo    vendor.Repository
	storeID string
}

func NewHandler(repo vendor.Repository, storeID string) *Handler {
	return &Handler{repo: repo, storeID: storeID}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := vendor.Filter{}

	if s := r.URL.Query().Get("search"); s != "" {
		filter.Search = &s
	}

	if s := r.URL.Query().Get("category"); s != "" {
		c := vendor.Category(s)
		filter.Category = &c
	}

	if s := r.URL.Query().Get("active"); s != "" {
		active := s == "true"
		filter.IsActive = &active
	}

	vendors, err := h.repo.FetchVendors(r.Context(), h.storeID, filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponses(vendors))
}

type createVendorRequest struct {
	Name     string          `json:"name"`
	Category vendor.Category `json:"category"`
	IsActive *bool           `json:"is_active"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	v := &vendor.Vendor{
		StoreID:  h.storeID,
		Name:     req.Name,
		Category: req.Category,
		IsActive: true,
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := h.repo.Save(r.Context(), v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(v))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vendor id", http.StatusBadRequest)
		return
	}

	v, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, vendor.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(v))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vendor id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type vendorResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category vendor.Category `json:"category"`
	IsActive bool            `json:"is_active"`
}

func toResponse(v *vendor.Vendor) vendorResponse {
	return vendorResponse{
		ID:       v.ID,
		Name:     v.Name,
		Category: v.Category,
		IsActive: v.IsActive,
	}
}

func toResponses(vendors []*vendor.Vendor) []vendorResponse {
	out := make([]vendorResponse, 0, len(vendors))

	for _, v := range vendors {
		out = append(out, toResponse(v))
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
