package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
)

type serviceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type healthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]serviceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
}

// HealthCheckHandler handles GET /healthCheck. Reports per-service state and
// process uptime; the endpoint itself stays public.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]serviceStatus)

		pgStatus := "ok"
		pgDetails := "Postgres Connected"
		if err := db.Ping(); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["postgres"] = serviceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		resp := healthCheckResponse{
			Status:   overallStatus,
			Services: services,
			UpSince:  upSince,
			Uptime:   now.Sub(upSince).Round(time.Second).String(),
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
