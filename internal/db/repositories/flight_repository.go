package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"digiboard/api/internal/constants"
	gormModels "digiboard/api/internal/models/gorm"
)

// FlightFilter is the optional criteria set for flight reads. Zero values
// mean "not present"; each present field maps to exactly one predicate.
type FlightFilter struct {
	Search    string // substring match on flight_number
	Date      string // exact departure_date
	DateFrom  string // inclusive range start, only applied together with DateTo
	DateTo    string
	StatusID  uint
	AirlineID uint
	GateID    uint
}

// Grouped-count rows produced by the aggregation reads.

type StatusCountRow struct {
	StatusID uint
	Name     string
	Count    int64
}

type AirlineCountRow struct {
	AirlineID uint
	Name      string
	Code      string
	Count     int64
}

type GateCountRow struct {
	Code  string
	Count int64
}

// FlightRepository is the read/write surface over the flights table with all
// relations resolved by foreign key.
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) apply(ctx context.Context, f FlightFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&gormModels.Flight{})
	if f.Search != "" {
		tx = tx.Where("flight_number LIKE ?", "%"+f.Search+"%")
	}
	if f.Date != "" {
		tx = tx.Where("departure_date = ?", f.Date)
	}
	if f.DateFrom != "" && f.DateTo != "" {
		tx = tx.Where("departure_date BETWEEN ? AND ?", f.DateFrom, f.DateTo)
	}
	if f.StatusID != 0 {
		tx = tx.Where("status_id = ?", f.StatusID)
	}
	if f.AirlineID != 0 {
		tx = tx.Where("airline_id = ?", f.AirlineID)
	}
	if f.GateID != 0 {
		tx = tx.Where("gate_id = ?", f.GateID)
	}
	return tx
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Airline").
		Preload("DestinationAirport").
		Preload("Gate").
		Preload("Status").
		Preload("User")
}

// List returns a page of flights with relations attached. A sort field
// outside the allow-list silently falls back to the schedule order
// (departure_date then departure_time ascending).
func (r *FlightRepository) List(ctx context.Context, f FlightFilter, q ListQuery) ([]gormModels.Flight, int64, error) {
	q = q.Normalized(constants.FlightsDefaultPerPage)

	tx := r.apply(ctx, f)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count flights: %w", err)
	}

	if constants.FlightSortFields[q.SortBy] {
		tx = tx.Order(q.SortBy + " " + SortDir(q.SortDirection))
	} else {
		tx = tx.Order("departure_date ASC").Order("departure_time ASC")
	}

	var flights []gormModels.Flight
	err := withRelations(tx).Offset(q.Offset()).Limit(q.PerPage).Find(&flights).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, total, nil
}

// ListAll is the unpaginated retrieval used by the dashboard and the public
// board, ordered by departure time.
func (r *FlightRepository) ListAll(ctx context.Context, f FlightFilter) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	err := withRelations(r.apply(ctx, f)).
		Order("departure_time ASC").
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id uint) (*gormModels.Flight, error) {
	var flight gormModels.Flight
	err := withRelations(r.db.WithContext(ctx)).First(&flight, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}
	return &flight, nil
}

func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *FlightRepository) Update(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

func (r *FlightRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&gormModels.Flight{}, id).Error
}

func (r *FlightRepository) NumberExists(ctx context.Context, number string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Where("flight_number = ? AND id <> ?", number, excludeID).
		Count(&count).Error
	return count > 0, err
}

// CountByDate counts flights departing on the given date.
func (r *FlightRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Where("departure_date = ?", date).
		Count(&count).Error
	return count, err
}

// StatusCounts groups the date's flights by status. Groups with zero flights
// do not appear; ordering is by count descending for deterministic output.
func (r *FlightRepository) StatusCounts(ctx context.Context, date string) ([]StatusCountRow, error) {
	rows := []StatusCountRow{}
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Select("flights.status_id AS status_id, flight_statuses.name AS name, count(*) AS count").
		Joins("JOIN flight_statuses ON flight_statuses.id = flights.status_id").
		Where("flights.departure_date = ?", date).
		Group("flights.status_id, flight_statuses.name").
		Order("count(*) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group flights by status: %w", err)
	}
	return rows, nil
}

// AirlineCounts groups the date's flights by airline, count descending.
func (r *FlightRepository) AirlineCounts(ctx context.Context, date string) ([]AirlineCountRow, error) {
	rows := []AirlineCountRow{}
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Select("flights.airline_id AS airline_id, airlines.name AS name, airlines.code AS code, count(*) AS count").
		Joins("JOIN airlines ON airlines.id = flights.airline_id").
		Where("flights.departure_date = ?", date).
		Group("flights.airline_id, airlines.name, airlines.code").
		Order("count(*) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group flights by airline: %w", err)
	}
	return rows, nil
}

// GateCounts returns per-gate flight counts for the date, busiest first.
// Gates without flights are absent by construction of the join.
func (r *FlightRepository) GateCounts(ctx context.Context, date string, limit int) ([]GateCountRow, error) {
	rows := []GateCountRow{}
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Select("gates.code AS code, count(*) AS count").
		Joins("JOIN gates ON gates.id = flights.gate_id").
		Where("flights.departure_date = ?", date).
		Group("gates.id, gates.code").
		Order("count(*) DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute gate utilization: %w", err)
	}
	return rows, nil
}

// ActiveGateCount counts distinct gates with at least one flight on the date.
func (r *FlightRepository) ActiveGateCount(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).
		Where("departure_date = ?", date).
		Distinct("gate_id").
		Count(&count).Error
	return count, err
}

// Upcoming returns the date's flights departing inside the half-open
// [from, to) time-of-day window, earliest first. The comparison is on
// wall-clock time only; a window crossing midnight does not reach into the
// next date.
func (r *FlightRepository) Upcoming(ctx context.Context, date, from, to string, limit int) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	err := withRelations(r.db.WithContext(ctx).Model(&gormModels.Flight{})).
		Where("departure_date = ? AND departure_time >= ? AND departure_time < ?", date, from, to).
		Order("departure_time ASC").
		Limit(limit).
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming departures: %w", err)
	}
	return flights, nil
}

// RecentlyUpdated returns the date's flights modified at or after the given
// instant, most recent first.
func (r *FlightRepository) RecentlyUpdated(ctx context.Context, date string, since time.Time, limit int) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	err := withRelations(r.db.WithContext(ctx).Model(&gormModels.Flight{})).
		Where("departure_date = ? AND updated_at >= ?", date, since).
		Order("updated_at DESC").
		Limit(limit).
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent updates: %w", err)
	}
	return flights, nil
}
