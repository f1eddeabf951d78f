package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"digiboard/api/internal/auth"
	"digiboard/api/internal/config"
	"digiboard/api/internal/metrics"
	gormModels "digiboard/api/internal/models/gorm"
)

var (
	metricsOnce sync.Once
	metricsReg  *metrics.MetricsRegistry
)

// testMetrics returns a process-wide registry. Prometheus collectors may only
// be registered once per process, so every test shares this one.
func testMetrics() *metrics.MetricsRegistry {
	metricsOnce.Do(func() {
		metricsReg = metrics.NewMetricsRegistry()
	})
	return metricsReg
}

func setupTestAPI(t *testing.T) (*Handlers, *Dependencies, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Airline{},
		&gormModels.Airport{},
		&gormModels.Gate{},
		&gormModels.FlightStatus{},
		&gormModels.Flight{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	cfg := &config.Config{
		AppEnv:   "test",
		LogoDir:  t.TempDir(),
		TokenTTL: time.Hour,
	}
	deps, err := InitDependencies(db, cfg, testMetrics())
	if err != nil {
		t.Fatalf("Failed to init dependencies: %v", err)
	}
	return NewHandlers(deps), deps, db
}

// testRouter wires the handlers onto the real route shapes so chi URL params
// resolve. When user is non-nil every request runs as that user, standing in
// for the auth middleware.
func testRouter(h *Handlers, user *gormModels.User) *chi.Mux {
	r := chi.NewRouter()
	if user != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(auth.SetCurrentUser(req.Context(), user)))
			})
		})
	}

	r.Post("/api/login", h.Login())
	r.Get("/api/user", h.Me())
	r.Get("/api/digital-board", h.Board())
	r.Get("/api/dashboard/statistics", h.Statistics())
	r.Get("/api/dashboard/today-flights", h.TodayFlights())

	resources := map[string]struct {
		list, create, get, update, del http.HandlerFunc
	}{
		"/api/airlines":        {h.ListAirlines(), h.CreateAirline(), h.GetAirline(), h.UpdateAirline(), h.DeleteAirline()},
		"/api/airports":        {h.ListAirports(), h.CreateAirport(), h.GetAirport(), h.UpdateAirport(), h.DeleteAirport()},
		"/api/gates":           {h.ListGates(), h.CreateGate(), h.GetGate(), h.UpdateGate(), h.DeleteGate()},
		"/api/flight-statuses": {h.ListFlightStatuses(), h.CreateFlightStatus(), h.GetFlightStatus(), h.UpdateFlightStatus(), h.DeleteFlightStatus()},
		"/api/flights":         {h.ListFlights(), h.CreateFlight(), h.GetFlight(), h.UpdateFlight(), h.DeleteFlight()},
		"/api/users":           {h.ListUsers(), h.CreateUser(), h.GetUser(), h.UpdateUser(), h.DeleteUser()},
	}
	for path, res := range resources {
		res := res
		r.Route(path, func(rt chi.Router) {
			rt.Get("/", res.list)
			rt.Post("/", res.create)
			rt.Get("/{id}", res.get)
			rt.Put("/{id}", res.update)
			rt.Delete("/{id}", res.del)
		})
	}
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return body
}
