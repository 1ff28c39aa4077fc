package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

// handleCampaignSubmit consumes one finalized wizard submission and walks it
// through the publish pipeline. The body is a domain.Submission: the
// accumulated form plus optional existing campaign/ad set ids. On success it
// returns the three created ids; on any failure a single error message.
func (h *Handler) handleCampaignSubmit(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(sub.Form); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sub.Form.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Publish(r.Context(), sub)
	if err != nil {
		h.logger.Error("publish error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// handleCampaignList returns the mirrored campaigns, newest first.
func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if campaigns == nil {
		campaigns = []domain.CampaignRecord{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleCampaignInsights proxies the platform's performance summary for a
// campaign. A campaign with no stats for the period yields a JSON null.
func (h *Handler) handleCampaignInsights(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if campaignID == "" {
		h.writeError(w, http.StatusBadRequest, "missing campaign id")
		return
	}
	insights, err := h.svc.Insights(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("insights error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, insights)
}
