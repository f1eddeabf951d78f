package api

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"digiboard/api/internal/config"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/logging"
	"digiboard/api/internal/metrics"
	"digiboard/api/internal/services"
	"digiboard/api/internal/storage"
)

type Repositories struct {
	Airlines *repositories.AirlineRepository
	Airports *repositories.AirportRepository
	Gates    *repositories.GateRepository
	Statuses *repositories.FlightStatusRepository
	Flights  *repositories.FlightRepository
	Users    *repositories.UserRepository
}

type Services struct {
	Auth      *services.AuthService
	Dashboard *services.DashboardService
	Board     *services.BoardService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Logos    storage.LogoStore
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories, services and the logo store. The
// token store backend follows the config: Redis when an address is set,
// otherwise in-process memory.
func InitDependencies(db *gorm.DB, cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Airlines: repositories.NewAirlineRepository(db),
		Airports: repositories.NewAirportRepository(db),
		Gates:    repositories.NewGateRepository(db),
		Statuses: repositories.NewFlightStatusRepository(db),
		Flights:  repositories.NewFlightRepository(db),
		Users:    repositories.NewUserRepository(db),
	}

	var tokens services.TokenStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		tokens = services.NewRedisTokenStore(client)
		logging.Info("Token store backed by Redis", "addr", cfg.RedisAddr)
	} else {
		tokens = services.NewMemoryTokenStore()
		logging.Info("Token store backed by process memory")
	}

	logos, err := storage.NewDiskLogoStore(cfg.LogoDir)
	if err != nil {
		return nil, err
	}

	svcs := &Services{
		Auth:      services.NewAuthService(repos.Users, tokens, cfg.TokenTTL),
		Dashboard: services.NewDashboardService(repos.Flights, repos.Airlines, repos.Gates),
		Board:     services.NewBoardService(repos.Flights),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Logos:    logos,
		Metrics:  metricsReg,
	}, nil
}
