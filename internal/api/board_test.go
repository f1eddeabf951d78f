package api

import (
	"net/http"
	"testing"
)

func TestBoardHandlerEmptyDay(t *testing.T) {
	h, _, _ := setupTestAPI(t)
	router := testRouter(h, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/digital-board", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["total_flights"].(float64) != 0 {
		t.Errorf("Expected 0 flights, got %v", body["total_flights"])
	}
	if _, ok := body["flights"].([]any); !ok {
		t.Errorf("Expected a flights array, got %v", body["flights"])
	}
}

func TestStatisticsHandlerShape(t *testing.T) {
	h, _, _ := setupTestAPI(t)
	router := testRouter(h, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/statistics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	for _, key := range []string{"summary", "flights_by_status", "flights_by_airline", "upcoming_departures", "gate_utilization", "recent_updates"} {
		if _, ok := body[key]; !ok {
			t.Errorf("Missing %s in statistics payload", key)
		}
	}
	// Lists are present even when empty.
	if _, ok := body["flights_by_status"].([]any); !ok {
		t.Errorf("Expected flights_by_status to be an array, got %v", body["flights_by_status"])
	}
}
