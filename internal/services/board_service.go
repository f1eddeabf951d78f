package services

import (
	"context"
	"time"

	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/models/dtos"
)

// BoardService projects today's flights into the public digital board shape.
// The board is unauthenticated and unpaginated; clients poll it.
type BoardService struct {
	flights *repositories.FlightRepository
}

func NewBoardService(flights *repositories.FlightRepository) *BoardService {
	return &BoardService{flights: flights}
}

// Board returns every flight departing on ref's date ordered by departure
// time, optionally narrowed to one status. A day without flights yields an
// empty list, not an error.
func (s *BoardService) Board(ctx context.Context, ref time.Time, statusID uint) (*dtos.BoardResponse, error) {
	today := ref.Format(constants.DateLayout)

	flights, err := s.flights.ListAll(ctx, repositories.FlightFilter{
		Date:     today,
		StatusID: statusID,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]dtos.BoardFlight, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, dtos.BoardFlight{
			ID:            f.ID,
			FlightNumber:  f.FlightNumber,
			DepartureTime: f.DepartureTime,
			DepartureDate: f.DepartureDate,
			Airline: dtos.BoardAirline{
				Name: f.Airline.Name,
				Code: f.Airline.Code,
				Logo: f.Airline.Logo,
			},
			Destination: dtos.BoardDestination{
				Name: f.DestinationAirport.Name,
				City: f.DestinationAirport.City,
				Code: f.DestinationAirport.Code,
			},
			Gate: f.Gate.Code,
			Status: dtos.BoardStatus{
				Name:  f.Status.Name,
				Color: f.Status.Color,
			},
		})
	}

	return &dtos.BoardResponse{
		Date:         today,
		TotalFlights: len(rows),
		Flights:      rows,
	}, nil
}
