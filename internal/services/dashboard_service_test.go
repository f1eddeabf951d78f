package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"digiboard/api/internal/db/repositories"
	gormModels "digiboard/api/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
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

	return db
}

type fixture struct {
	user     gormModels.User
	garuda   gormModels.Airline
	lion     gormModels.Airline
	denpasar gormModels.Airport
	surabaya gormModels.Airport
	gateA1   gormModels.Gate
	gateA2   gormModels.Gate
	gateB1   gormModels.Gate
	onTime   gormModels.FlightStatus
	delayed  gormModels.FlightStatus
}

// seedFixture inserts the lookup rows and five flights on 2025-03-10: four
// GA/JT departures between 10:30 and 15:59 plus one at 20:00, and one GA
// flight on the next day.
func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	fx := fixture{
		user:     gormModels.User{Name: "Operator", Email: "ops@digiboard.local", Password: "x"},
		garuda:   gormModels.Airline{Name: "Garuda Indonesia", Code: "GA"},
		lion:     gormModels.Airline{Name: "Lion Air", Code: "JT"},
		denpasar: gormModels.Airport{Name: "I Gusti Ngurah Rai", Code: "DPS", City: "Denpasar", Country: "Indonesia"},
		surabaya: gormModels.Airport{Name: "Juanda", Code: "SUB", City: "Surabaya", Country: "Indonesia"},
		gateA1:   gormModels.Gate{Code: "A1"},
		gateA2:   gormModels.Gate{Code: "A2"},
		gateB1:   gormModels.Gate{Code: "B1"},
		onTime:   gormModels.FlightStatus{Name: "On Time", Color: "#22c55e"},
		delayed:  gormModels.FlightStatus{Name: "Delayed", Color: "#eab308"},
	}

	for _, rec := range []any{
		&fx.user, &fx.garuda, &fx.lion, &fx.denpasar, &fx.surabaya,
		&fx.gateA1, &fx.gateA2, &fx.gateB1, &fx.onTime, &fx.delayed,
	} {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("Failed to seed fixture: %v", err)
		}
	}

	flights := []gormModels.Flight{
		{FlightNumber: "GA-101", DepartureDate: "2025-03-10", DepartureTime: "10:30:00",
			AirlineID: fx.garuda.ID, DestinationAirportID: fx.denpasar.ID, GateID: fx.gateA1.ID, StatusID: fx.onTime.ID, UserID: fx.user.ID},
		{FlightNumber: "GA-102", DepartureDate: "2025-03-10", DepartureTime: "11:00:00",
			AirlineID: fx.garuda.ID, DestinationAirportID: fx.surabaya.ID, GateID: fx.gateA1.ID, StatusID: fx.onTime.ID, UserID: fx.user.ID},
		{FlightNumber: "JT-202", DepartureDate: "2025-03-10", DepartureTime: "12:30:00",
			AirlineID: fx.lion.ID, DestinationAirportID: fx.denpasar.ID, GateID: fx.gateA2.ID, StatusID: fx.delayed.ID, UserID: fx.user.ID},
		{FlightNumber: "GA-103", DepartureDate: "2025-03-10", DepartureTime: "15:59:00",
			AirlineID: fx.garuda.ID, DestinationAirportID: fx.surabaya.ID, GateID: fx.gateB1.ID, StatusID: fx.onTime.ID, UserID: fx.user.ID},
		{FlightNumber: "JT-203", DepartureDate: "2025-03-10", DepartureTime: "20:00:00",
			AirlineID: fx.lion.ID, DestinationAirportID: fx.denpasar.ID, GateID: fx.gateB1.ID, StatusID: fx.onTime.ID, UserID: fx.user.ID},
		{FlightNumber: "GA-999", DepartureDate: "2025-03-11", DepartureTime: "09:00:00",
			AirlineID: fx.garuda.ID, DestinationAirportID: fx.denpasar.ID, GateID: fx.gateA1.ID, StatusID: fx.onTime.ID, UserID: fx.user.ID},
	}
	for i := range flights {
		if err := db.Create(&flights[i]).Error; err != nil {
			t.Fatalf("Failed to seed flight %s: %v", flights[i].FlightNumber, err)
		}
	}

	return fx
}

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repositories.NewFlightRepository(db),
		repositories.NewAirlineRepository(db),
		repositories.NewGateRepository(db),
	)
}

func refAt(t *testing.T, value string) time.Time {
	t.Helper()
	ref, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("Bad reference time %q: %v", value, err)
	}
	return ref
}

func TestDashboardService_Statistics(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	service := newDashboardService(db)

	stats, err := service.Statistics(context.Background(), refAt(t, "2025-03-10 10:00:00"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Summary.TotalFlightsToday != 5 {
		t.Errorf("Expected 5 flights today, got %d", stats.Summary.TotalFlightsToday)
	}
	if stats.Summary.TotalAirlines != 2 {
		t.Errorf("Expected 2 airlines, got %d", stats.Summary.TotalAirlines)
	}
	if stats.Summary.TotalGates != 3 {
		t.Errorf("Expected 3 gates, got %d", stats.Summary.TotalGates)
	}
	if stats.Summary.ActiveGatesToday != 3 {
		t.Errorf("Expected 3 active gates, got %d", stats.Summary.ActiveGatesToday)
	}

	if len(stats.FlightsByStatus) != 2 {
		t.Fatalf("Expected 2 status groups, got %d", len(stats.FlightsByStatus))
	}
	if stats.FlightsByStatus[0].Status != "On Time" || stats.FlightsByStatus[0].Count != 4 {
		t.Errorf("Expected On Time x4 first, got %s x%d",
			stats.FlightsByStatus[0].Status, stats.FlightsByStatus[0].Count)
	}
	if stats.FlightsByStatus[1].Status != "Delayed" || stats.FlightsByStatus[1].Count != 1 {
		t.Errorf("Expected Delayed x1 second, got %s x%d",
			stats.FlightsByStatus[1].Status, stats.FlightsByStatus[1].Count)
	}

	if len(stats.FlightsByAirline) != 2 {
		t.Fatalf("Expected 2 airline groups, got %d", len(stats.FlightsByAirline))
	}
	if stats.FlightsByAirline[0].Code != "GA" || stats.FlightsByAirline[0].Count != 3 {
		t.Errorf("Expected GA x3 first, got %s x%d",
			stats.FlightsByAirline[0].Code, stats.FlightsByAirline[0].Count)
	}

	// The window [10:00:00, 16:00:00) holds the 10:30, 11:00, 12:30 and
	// 15:59 departures but not the 20:00 one.
	if len(stats.UpcomingDepartures) != 4 {
		t.Fatalf("Expected 4 upcoming departures, got %d", len(stats.UpcomingDepartures))
	}
	if stats.UpcomingDepartures[0].FlightNumber != "GA-101" {
		t.Errorf("Expected GA-101 first, got %s", stats.UpcomingDepartures[0].FlightNumber)
	}
	if stats.UpcomingDepartures[3].FlightNumber != "GA-103" {
		t.Errorf("Expected GA-103 last, got %s", stats.UpcomingDepartures[3].FlightNumber)
	}

	if len(stats.GateUtilization) != 3 {
		t.Fatalf("Expected 3 gate rows, got %d", len(stats.GateUtilization))
	}
	if stats.GateUtilization[0].Gate != "A1" || stats.GateUtilization[0].Flights != 2 {
		t.Errorf("Expected A1 x2 first, got %s x%d",
			stats.GateUtilization[0].Gate, stats.GateUtilization[0].Flights)
	}

	// Rows were just written, so all five of the day's flights count as
	// recently updated.
	if len(stats.RecentUpdates) != 5 {
		t.Errorf("Expected 5 recent updates, got %d", len(stats.RecentUpdates))
	}
}

func TestDashboardService_Statistics_EmptyDay(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	service := newDashboardService(db)

	stats, err := service.Statistics(context.Background(), refAt(t, "2025-04-01 08:00:00"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Summary.TotalFlightsToday != 0 {
		t.Errorf("Expected 0 flights, got %d", stats.Summary.TotalFlightsToday)
	}
	if stats.Summary.ActiveGatesToday != 0 {
		t.Errorf("Expected 0 active gates, got %d", stats.Summary.ActiveGatesToday)
	}
	// Lookup totals are independent of the day.
	if stats.Summary.TotalAirlines != 2 || stats.Summary.TotalGates != 3 {
		t.Errorf("Expected lookup totals 2/3, got %d/%d",
			stats.Summary.TotalAirlines, stats.Summary.TotalGates)
	}

	if stats.FlightsByStatus == nil || len(stats.FlightsByStatus) != 0 {
		t.Errorf("Expected empty non-nil status list, got %#v", stats.FlightsByStatus)
	}
	if stats.UpcomingDepartures == nil || len(stats.UpcomingDepartures) != 0 {
		t.Errorf("Expected empty non-nil upcoming list, got %#v", stats.UpcomingDepartures)
	}
	if stats.RecentUpdates == nil || len(stats.RecentUpdates) != 0 {
		t.Errorf("Expected empty non-nil recent list, got %#v", stats.RecentUpdates)
	}
}

func TestDashboardService_Statistics_NearMidnight(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	service := newDashboardService(db)

	// At 22:30 the six-hour window formats to an end of 04:30, before its
	// own start, so nothing qualifies. Next-day flights stay out.
	stats, err := service.Statistics(context.Background(), refAt(t, "2025-03-10 22:30:00"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(stats.UpcomingDepartures) != 0 {
		t.Errorf("Expected no upcoming departures near midnight, got %d", len(stats.UpcomingDepartures))
	}
}

func TestDashboardService_TodayFlights(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	service := newDashboardService(db)
	ref := refAt(t, "2025-03-10 10:00:00")

	resp, err := service.TodayFlights(context.Background(), ref, 0, 0, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Date != "2025-03-10" {
		t.Errorf("Expected date 2025-03-10, got %s", resp.Date)
	}
	if resp.Total != 5 || len(resp.Flights) != 5 {
		t.Fatalf("Expected 5 flights, got total=%d len=%d", resp.Total, len(resp.Flights))
	}
	if resp.Flights[0].FlightNumber != "GA-101" {
		t.Errorf("Expected earliest departure first, got %s", resp.Flights[0].FlightNumber)
	}
	if resp.Flights[0].Airline != "Garuda Indonesia" || resp.Flights[0].Gate != "A1" {
		t.Errorf("Relations not resolved: %+v", resp.Flights[0])
	}

	byStatus, err := service.TodayFlights(context.Background(), ref, fx.delayed.ID, 0, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byStatus.Total != 1 || byStatus.Flights[0].FlightNumber != "JT-202" {
		t.Errorf("Expected only JT-202 delayed, got %+v", byStatus.Flights)
	}

	byAirline, err := service.TodayFlights(context.Background(), ref, 0, fx.lion.ID, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byAirline.Total != 2 {
		t.Errorf("Expected 2 Lion Air flights, got %d", byAirline.Total)
	}

	bySearch, err := service.TodayFlights(context.Background(), ref, 0, 0, "GA-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if bySearch.Total != 3 {
		t.Errorf("Expected 3 matches for GA-1, got %d", bySearch.Total)
	}
}
