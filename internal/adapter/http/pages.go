package httpadapter

import (
	"log/slog"
	"net/http"

	"adpilot/internal/core/port"
)

// handlePageList returns the pages the configured account can publish on
// behalf of, fetched live from the platform.
func (h *Handler) handlePageList(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.Pages(r.Context())
	if err != nil {
		h.logger.Error("list pages error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pages == nil {
		pages = []port.Page{}
	}
	h.writeJSON(w, http.StatusOK, pages)
}
