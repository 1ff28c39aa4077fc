package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON encodes v with the given status. Encoding should rarely fail;
// failures are logged and the response left as-is.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError surfaces a failure as a single human-readable message. No
// partial-success shape exists; callers get either a full result or this.
func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
