package api

import (
	"net/http"
	"time"
)

// Board handles GET /api/digital-board, the unauthenticated departures view
// served to terminal displays.
func (h *Handlers) Board() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.deps.Metrics.BoardRequestTotal.Inc()

		board, err := h.deps.Services.Board.Board(r.Context(), time.Now(), queryUint(r, "status_id"))
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}
