package dtos

// Request bodies for the CRUD endpoints. Every field is a pointer so the
// handlers can tell "absent" apart from "present but empty" on partial
// updates; create paths require the mandatory fields explicitly.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AirlineRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

type AirportRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

type GateRequest struct {
	Code *string `json:"code"`
}

type FlightStatusRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type UserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type FlightRequest struct {
	FlightNumber         *string `json:"flight_number"`
	DepartureTime        *string `json:"departure_time"`
	DepartureDate        *string `json:"departure_date"`
	AirlineID            *uint   `json:"airline_id"`
	DestinationAirportID *uint   `json:"destination_airport_id"`
	GateID               *uint   `json:"gate_id"`
	StatusID             *uint   `json:"status_id"`
}
