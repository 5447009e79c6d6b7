package httpadapter

import (
	"encoding/json"
	"net/http"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// handleAction records a customer action on a product. The body is a
// port.ActionReq. The response reports whether an event was published;
// an action on an untracked product is not an error and still yields 200.
func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	var req port.ActionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.RecordAction(r.Context(), req)
	if err != nil {
		h.writeError(w, "record action", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type publishEventReq struct {
	Topic   domain.Topic   `json:"topic"`
	Payload domain.Payload `json:"payload"`
}

// handlePublishEvent publishes a raw event for external producers and
// answers 202 once every subscriber has run. Product and campaign ids must
// be absent or valid UUIDs; a malformed id is rejected with 400 before
// anything is published. Well-formed ids that match nothing are published
// and ignored by the campaign manager.
func (h *Handler) handlePublishEvent(w http.ResponseWriter, r *http.Request) {
	var req publishEventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.PublishEvent(r.Context(), req.Topic, req.Payload); err != nil {
		h.writeError(w, "publish event", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
