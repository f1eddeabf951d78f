package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"digiboard/api/internal/api"
	"digiboard/api/internal/config"
	"digiboard/api/internal/db"
	"digiboard/api/internal/logging"
	"digiboard/api/internal/metrics"
	"digiboard/api/internal/middleware"
)

// RegisterRoutes builds the full router: global middleware, the public
// surface, and the authenticated API.
func RegisterRoutes(ormDB *gorm.DB, cfg *config.Config, metricsReg *metrics.MetricsRegistry, upSince time.Time) (http.Handler, error) {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"API OK"}`))
	})
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(ormDB, cfg, metricsReg)
	if err != nil {
		return nil, err
	}
	handlers := api.NewHandlers(deps)

	RegisterAPIRoutes(r, handlers, deps)

	return r, nil
}
