package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"mesa-campaigns/internal/core/port"
)

// handleStatsOverview returns journal aggregates over a period. It accepts
// optional `from`, `to` (RFC3339 timestamps) and `campaign_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
// Invalid parameters result in HTTP 400 and a disabled journal in 503.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		now     = time.Now()
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = now.Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = now
	}

	if req.CampaignID, err = campaignIDParam(r); err != nil {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleStatsLive returns the running counters, optionally narrowed by the
// `campaign_id` query parameter.
func (h *Handler) handleStatsLive(w http.ResponseWriter, r *http.Request) {
	campaignID, err := campaignIDParam(r)
	if err != nil {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}
	stats, err := h.svc.GetLiveStats(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, "live stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// campaignIDParam parses the optional campaign_id query parameter.
func campaignIDParam(r *http.Request) (*uuid.UUID, error) {
	cid := r.URL.Query().Get("campaign_id")
	if cid == "" {
		return nil, nil
	}
	id, err := uuid.Parse(cid)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
