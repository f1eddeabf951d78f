package services

import (
	"context"
	"testing"

	"digiboard/api/internal/db/repositories"
)

func TestBoardService_Board(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	service := NewBoardService(repositories.NewFlightRepository(db))

	board, err := service.Board(context.Background(), refAt(t, "2025-03-10 06:00:00"), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if board.Date != "2025-03-10" {
		t.Errorf("Expected date 2025-03-10, got %s", board.Date)
	}
	if board.TotalFlights != 5 || len(board.Flights) != 5 {
		t.Fatalf("Expected 5 flights, got total=%d len=%d", board.TotalFlights, len(board.Flights))
	}

	first := board.Flights[0]
	if first.FlightNumber != "GA-101" {
		t.Errorf("Expected GA-101 first, got %s", first.FlightNumber)
	}
	if first.Airline.Code != "GA" || first.Airline.Name != "Garuda Indonesia" {
		t.Errorf("Airline not resolved: %+v", first.Airline)
	}
	if first.Destination.City != "Denpasar" || first.Destination.Code != "DPS" {
		t.Errorf("Destination not resolved: %+v", first.Destination)
	}
	if first.Status.Name != "On Time" || first.Status.Color != "#22c55e" {
		t.Errorf("Status not resolved: %+v", first.Status)
	}
	if first.Gate != "A1" {
		t.Errorf("Expected gate A1, got %s", first.Gate)
	}
}

func TestBoardService_Board_StatusFilter(t *testing.T) {
	db := setupTestDB(t)
	fx := seedFixture(t, db)
	service := NewBoardService(repositories.NewFlightRepository(db))

	board, err := service.Board(context.Background(), refAt(t, "2025-03-10 06:00:00"), fx.delayed.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if board.TotalFlights != 1 || board.Flights[0].FlightNumber != "JT-202" {
		t.Errorf("Expected only the delayed JT-202, got %+v", board.Flights)
	}
}

func TestBoardService_Board_EmptyDay(t *testing.T) {
	db := setupTestDB(t)
	service := NewBoardService(repositories.NewFlightRepository(db))

	board, err := service.Board(context.Background(), refAt(t, "2025-03-10 06:00:00"), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if board.TotalFlights != 0 {
		t.Errorf("Expected 0 flights, got %d", board.TotalFlights)
	}
	if board.Flights == nil {
		t.Error("Expected empty non-nil flight list")
	}
}
