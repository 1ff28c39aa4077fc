package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
)

// handlePromotionList returns one row per mirrored ad set with its parent
// campaign and creative count, newest first.
func (h *Handler) handlePromotionList(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.svc.ListPromotions(r.Context())
	if err != nil {
		h.logger.Error("list promotions error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if promotions == nil {
		promotions = []domain.Promotion{}
	}
	h.writeJSON(w, http.StatusOK, promotions)
}

// handleAdList returns the ads under one ad set. The campaign id comes in as
// a query parameter because ad records are keyed under campaign then ad set.
func (h *Handler) handleAdList(w http.ResponseWriter, r *http.Request) {
	adSetID := chi.URLParam(r, "adSetID")
	campaignID := r.URL.Query().Get("campaign_id")
	if campaignID == "" || adSetID == "" {
		h.writeError(w, http.StatusBadRequest, "campaign id and ad set id are required")
		return
	}
	ads, err := h.svc.ListAds(r.Context(), campaignID, adSetID)
	if err != nil {
		h.logger.Error("list ads error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if ads == nil {
		ads = []domain.AdRecord{}
	}
	h.writeJSON(w, http.StatusOK, ads)
}
