package api

import (
	"net/http"
	"time"
)

// Statistics handles GET /api/dashboard/statistics. The reference instant is
// taken once here so every aggregate describes the same moment.
func (h *Handlers) Statistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.deps.Metrics.DashboardRequestTotal.Inc()

		stats, err := h.deps.Services.Dashboard.Statistics(r.Context(), time.Now())
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// TodayFlights handles GET /api/dashboard/today-flights
func (h *Handlers) TodayFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.deps.Services.Dashboard.TodayFlights(
			r.Context(),
			time.Now(),
			queryUint(r, "status_id"),
			queryUint(r, "airline_id"),
			r.URL.Query().Get("search"),
		)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
