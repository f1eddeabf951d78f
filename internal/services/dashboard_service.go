package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/models/dtos"
)

// DashboardService computes the statistics bundle behind the admin
// dashboard. Every sub-query is parameterized by a single reference instant
// captured once per request, so the counts and the lists describe the same
// snapshot.
type DashboardService struct {
	flights  *repositories.FlightRepository
	airlines *repositories.AirlineRepository
	gates    *repositories.GateRepository
}

func NewDashboardService(
	flights *repositories.FlightRepository,
	airlines *repositories.AirlineRepository,
	gates *repositories.GateRepository,
) *DashboardService {
	return &DashboardService{flights: flights, airlines: airlines, gates: gates}
}

// Statistics builds the full bundle for the day containing ref. The six
// sections are independent reads and run concurrently; zero matches in any
// of them produce empty lists, never errors.
//
// The upcoming window [ref, ref+6h) is compared on wall-clock time-of-day
// only. Near midnight the window end wraps past "24:00:00" and the interval
// becomes empty; flights on the next calendar date are never included. That
// mirrors the behavior of the system this replaces.
func (s *DashboardService) Statistics(ctx context.Context, ref time.Time) (*dtos.DashboardStatistics, error) {
	today := ref.Format(constants.DateLayout)
	nowClock := ref.Format(constants.TimeLayout)
	windowEnd := ref.Add(constants.UpcomingWindow).Format(constants.TimeLayout)
	updatedSince := ref.Add(-constants.RecentUpdatesWindow)

	stats := &dtos.DashboardStatistics{
		FlightsByStatus:    []dtos.StatusCount{},
		FlightsByAirline:   []dtos.AirlineCount{},
		UpcomingDepartures: []dtos.UpcomingDeparture{},
		GateUtilization:    []dtos.GateUtilization{},
		RecentUpdates:      []dtos.RecentUpdate{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totalToday, err := s.flights.CountByDate(gctx, today)
		if err != nil {
			return err
		}
		totalAirlines, err := s.airlines.Count(gctx)
		if err != nil {
			return err
		}
		totalGates, err := s.gates.Count(gctx)
		if err != nil {
			return err
		}
		activeGates, err := s.flights.ActiveGateCount(gctx, today)
		if err != nil {
			return err
		}
		stats.Summary = dtos.DashboardSummary{
			TotalFlightsToday: totalToday,
			TotalAirlines:     totalAirlines,
			TotalGates:        totalGates,
			ActiveGatesToday:  activeGates,
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.flights.StatusCounts(gctx, today)
		if err != nil {
			return err
		}
		for _, row := range rows {
			stats.FlightsByStatus = append(stats.FlightsByStatus, dtos.StatusCount{
				Status: row.Name,
				Count:  row.Count,
			})
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.flights.AirlineCounts(gctx, today)
		if err != nil {
			return err
		}
		for _, row := range rows {
			stats.FlightsByAirline = append(stats.FlightsByAirline, dtos.AirlineCount{
				Airline: row.Name,
				Code:    row.Code,
				Count:   row.Count,
			})
		}
		return nil
	})

	g.Go(func() error {
		flights, err := s.flights.Upcoming(gctx, today, nowClock, windowEnd, constants.UpcomingLimit)
		if err != nil {
			return err
		}
		for _, f := range flights {
			stats.UpcomingDepartures = append(stats.UpcomingDepartures, dtos.UpcomingDeparture{
				ID:              f.ID,
				FlightNumber:    f.FlightNumber,
				Airline:         f.Airline.Name,
				AirlineCode:     f.Airline.Code,
				Destination:     f.DestinationAirport.City,
				DestinationCode: f.DestinationAirport.Code,
				Gate:            f.Gate.Code,
				DepartureTime:   f.DepartureTime,
				Status:          f.Status.Name,
			})
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.flights.GateCounts(gctx, today, constants.GateUtilizationLimit)
		if err != nil {
			return err
		}
		for _, row := range rows {
			stats.GateUtilization = append(stats.GateUtilization, dtos.GateUtilization{
				Gate:    row.Code,
				Flights: row.Count,
			})
		}
		return nil
	})

	g.Go(func() error {
		flights, err := s.flights.RecentlyUpdated(gctx, today, updatedSince, constants.RecentUpdatesLimit)
		if err != nil {
			return err
		}
		for _, f := range flights {
			stats.RecentUpdates = append(stats.RecentUpdates, dtos.RecentUpdate{
				FlightNumber: f.FlightNumber,
				Airline:      f.Airline.Name,
				Destination:  f.DestinationAirport.City,
				Status:       f.Status.Name,
				UpdatedAt:    f.UpdatedAt.Format(constants.TimeLayout),
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// TodayFlights returns every flight departing on ref's date, optionally
// narrowed by status, airline or a flight-number search, earliest departure
// first.
func (s *DashboardService) TodayFlights(ctx context.Context, ref time.Time, statusID, airlineID uint, search string) (*dtos.TodayFlightsResponse, error) {
	today := ref.Format(constants.DateLayout)

	flights, err := s.flights.ListAll(ctx, repositories.FlightFilter{
		Date:      today,
		StatusID:  statusID,
		AirlineID: airlineID,
		Search:    search,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]dtos.TodayFlight, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, dtos.TodayFlight{
			ID:              f.ID,
			FlightNumber:    f.FlightNumber,
			Airline:         f.Airline.Name,
			AirlineCode:     f.Airline.Code,
			Destination:     f.DestinationAirport.Name,
			DestinationCity: f.DestinationAirport.City,
			DestinationCode: f.DestinationAirport.Code,
			Gate:            f.Gate.Code,
			DepartureTime:   f.DepartureTime,
			DepartureDate:   f.DepartureDate,
			Status:          f.Status.Name,
		})
	}

	return &dtos.TodayFlightsResponse{
		Date:    today,
		Total:   len(rows),
		Flights: rows,
	}, nil
}
