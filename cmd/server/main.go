package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"digiboard/api/internal/config"
	"digiboard/api/internal/db"
	"digiboard/api/internal/logging"
	"digiboard/api/internal/metrics"
	"digiboard/api/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Digiboard API starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx, used by the health check.
	if err := db.InitPostgres(cfg.DSN()); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM, used by everything else.
	ormDB, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.AutoMigrate(ormDB); err != nil {
		logging.Error("Migration failed", "error", err.Error())
		log.Fatalf("Migration failed: %v", err)
	}

	if cfg.SeedDB {
		if err := db.Seed(ormDB); err != nil {
			logging.Error("Seeding failed", "error", err.Error())
			log.Fatalf("Seeding failed: %v", err)
		}
		logging.Info("Reference data seeded")
	}

	upSince := time.Now()
	metricsReg := metrics.NewMetricsRegistry()

	router, err := routes.RegisterRoutes(ormDB, cfg, metricsReg, upSince)
	if err != nil {
		logging.Error("Failed to initialize routes", "error", err.Error())
		log.Fatalf("Failed to initialize routes: %v", err)
	}

	// Metrics endpoint lives outside the Chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"addr", cfg.HTTPAddr,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}
