package dtos

// Paginated is the list envelope shared by every index endpoint.
type Paginated struct {
	Data        any   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// DataResponse wraps a single record for show endpoints.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse carries a human-readable message, optionally with the
// affected record.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ValidationErrorResponse is the 422 body: field name to list of problems.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Dashboard statistics bundle. All slices are non-nil even when empty.

type DashboardSummary struct {
	TotalFlightsToday int64 `json:"total_flights_today"`
	TotalAirlines     int64 `json:"total_airlines"`
	TotalGates        int64 `json:"total_gates"`
	ActiveGatesToday  int64 `json:"active_gates_today"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type AirlineCount struct {
	Airline string `json:"airline"`
	Code    string `json:"code"`
	Count   int64  `json:"count"`
}

type UpcomingDeparture struct {
	ID            uint   `json:"id"`
	FlightNumber  string `json:"flight_number"`
	Airline       string `json:"airline"`
	AirlineCode   string `json:"airline_code"`
	Destination   string `json:"destination"`
	DestinationCode string `json:"destination_code"`
	Gate          string `json:"gate"`
	DepartureTime string `json:"departure_time"`
	Status        string `json:"status"`
}

type GateUtilization struct {
	Gate    string `json:"gate"`
	Flights int64  `json:"flights"`
}

type RecentUpdate struct {
	FlightNumber string `json:"flight_number"`
	Airline      string `json:"airline"`
	Destination  string `json:"destination"`
	Status       string `json:"status"`
	UpdatedAt    string `json:"updated_at"`
}

type DashboardStatistics struct {
	Summary            DashboardSummary    `json:"summary"`
	FlightsByStatus    []StatusCount       `json:"flights_by_status"`
	FlightsByAirline   []AirlineCount      `json:"flights_by_airline"`
	UpcomingDepartures []UpcomingDeparture `json:"upcoming_departures"`
	GateUtilization    []GateUtilization   `json:"gate_utilization"`
	RecentUpdates      []RecentUpdate      `json:"recent_updates"`
}

// TodayFlight is the dashboard's today-list row.
type TodayFlight struct {
	ID              uint   `json:"id"`
	FlightNumber    string `json:"flight_number"`
	Airline         string `json:"airline"`
	AirlineCode     string `json:"airline_code"`
	Destination     string `json:"destination"`
	DestinationCity string `json:"destination_city"`
	DestinationCode string `json:"destination_code"`
	Gate            string `json:"gate"`
	DepartureTime   string `json:"departure_time"`
	DepartureDate   string `json:"departure_date"`
	Status          string `json:"status"`
}

type TodayFlightsResponse struct {
	Date    string        `json:"date"`
	Total   int           `json:"total"`
	Flights []TodayFlight `json:"flights"`
}

// Public digital board shapes.

type BoardAirline struct {
	Name string  `json:"name"`
	Code string  `json:"code"`
	Logo *string `json:"logo"`
}

type BoardDestination struct {
	Name string `json:"name"`
	City string `json:"city"`
	Code string `json:"code"`
}

type BoardStatus struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type BoardFlight struct {
	ID            uint             `json:"id"`
	FlightNumber  string           `json:"flight_number"`
	DepartureTime string           `json:"departure_time"`
	DepartureDate string           `json:"departure_date"`
	Airline       BoardAirline     `json:"airline"`
	Destination   BoardDestination `json:"destination"`
	Gate          string           `json:"gate"`
	Status        BoardStatus      `json:"status"`
}

type BoardResponse struct {
	Date         string        `json:"date"`
	TotalFlights int           `json:"total_flights"`
	Flights      []BoardFlight `json:"flights"`
}
