package httpadapter

import (
	"net/http"

	"mesa-campaigns/internal/core/domain"
)

// handleListProducts renders the product page for the `segment` query
// parameter. An empty segment lists the catalog without targeting; an
// unknown one is rejected with 400.
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	segment := domain.Segment(r.URL.Query().Get("segment"))
	if segment != "" && !segment.Valid() {
		http.Error(w, "invalid segment", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.ListProducts(r.Context(), segment))
}

func (h *Handler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ListCustomers(r.Context()))
}
