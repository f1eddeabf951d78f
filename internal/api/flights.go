package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"digiboard/api/internal/auth"
	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/models/dtos"
	gormModels "digiboard/api/internal/models/gorm"
)

func flightFilter(r *http.Request) repositories.FlightFilter {
	q := r.URL.Query()
	return repositories.FlightFilter{
		Search:    q.Get("search"),
		Date:      q.Get("date"),
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		StatusID:  queryUint(r, "status_id"),
		AirlineID: queryUint(r, "airline_id"),
		GateID:    queryUint(r, "gate_id"),
	}
}

// checkFlightRefs verifies that every referenced lookup row exists. Only the
// ids present in the request are checked, so partial updates validate just
// what they change.
func (h *Handlers) checkFlightRefs(ctx context.Context, req dtos.FlightRequest, errs fieldErrors) error {
	if req.AirlineID != nil {
		if _, err := h.deps.Repo.Airlines.FindByID(ctx, *req.AirlineID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			errs.add("airline_id", invalidRefMsg("airline_id"))
		}
	}
	if req.DestinationAirportID != nil {
		if _, err := h.deps.Repo.Airports.FindByID(ctx, *req.DestinationAirportID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			errs.add("destination_airport_id", invalidRefMsg("destination_airport_id"))
		}
	}
	if req.GateID != nil {
		if _, err := h.deps.Repo.Gates.FindByID(ctx, *req.GateID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			errs.add("gate_id", invalidRefMsg("gate_id"))
		}
	}
	if req.StatusID != nil {
		if _, err := h.deps.Repo.Statuses.FindByID(ctx, *req.StatusID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			errs.add("status_id", invalidRefMsg("status_id"))
		}
	}
	return nil
}

// ListFlights handles GET /api/flights. Filters combine with AND; an unknown
// sort field falls back to the schedule order.
func (h *Handlers) ListFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r).Normalized(constants.FlightsDefaultPerPage)
		flights, total, err := h.deps.Repo.Flights.List(r.Context(), flightFilter(r), q)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginated(flights, q, total))
	}
}

// CreateFlight handles POST /api/flights. The flight is attributed to the
// authenticated operator.
func (h *Handlers) CreateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.FlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		number := checkRequired(errs, "flight_number", req.FlightNumber)
		if number != "" {
			checkMaxLen(errs, "flight_number", number, 50)
			taken, err := h.deps.Repo.Flights.NumberExists(r.Context(), number, 0)
			if err != nil {
				respondServerError(w, err)
				return
			}
			if taken {
				errs.add("flight_number", takenMsg("flight number"))
			}
		}
		depTime := checkRequired(errs, "departure_time", req.DepartureTime)
		if depTime != "" && !validTimeOfDay(depTime) {
			errs.add("departure_time", "The departure time does not match the format H:i:s.")
		}
		depDate := checkRequired(errs, "departure_date", req.DepartureDate)
		if depDate != "" && !validDate(depDate) {
			errs.add("departure_date", "The departure date is not a valid date.")
		}
		if req.AirlineID == nil {
			errs.add("airline_id", requiredMsg("airline id"))
		}
		if req.DestinationAirportID == nil {
			errs.add("destination_airport_id", requiredMsg("destination airport id"))
		}
		if req.GateID == nil {
			errs.add("gate_id", requiredMsg("gate id"))
		}
		if req.StatusID == nil {
			errs.add("status_id", requiredMsg("status id"))
		}
		if err := h.checkFlightRefs(r.Context(), req, errs); err != nil {
			respondServerError(w, err)
			return
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		user := auth.CurrentUser(r.Context())
		if user == nil {
			respondUnauthorized(w)
			return
		}

		flight := gormModels.Flight{
			FlightNumber:         number,
			DepartureTime:        depTime,
			DepartureDate:        depDate,
			AirlineID:            *req.AirlineID,
			DestinationAirportID: *req.DestinationAirportID,
			GateID:               *req.GateID,
			StatusID:             *req.StatusID,
			UserID:               user.ID,
		}
		if err := h.deps.Repo.Flights.Create(r.Context(), &flight); err != nil {
			respondServerError(w, err)
			return
		}
		h.deps.Metrics.FlightsCreatedTotal.Inc()

		created, err := h.deps.Repo.Flights.FindByID(r.Context(), flight.ID)
		if err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusCreated, "Flight created successfully", created)
	}
}

// GetFlight handles GET /api/flights/{id}
func (h *Handlers) GetFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Flight")
			return
		}
		flight, err := h.deps.Repo.Flights.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Flight")
				return
			}
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.DataResponse{Data: flight})
	}
}

// UpdateFlight handles PUT /api/flights/{id}. Fields absent from the body
// keep their stored values; the managing operator never changes on update.
func (h *Handlers) UpdateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Flight")
			return
		}
		flight, err := h.deps.Repo.Flights.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Flight")
				return
			}
			respondServerError(w, err)
			return
		}

		var req dtos.FlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		if req.FlightNumber != nil {
			if *req.FlightNumber == "" {
				errs.add("flight_number", requiredMsg("flight number"))
			} else {
				checkMaxLen(errs, "flight_number", *req.FlightNumber, 50)
				taken, err := h.deps.Repo.Flights.NumberExists(r.Context(), *req.FlightNumber, id)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("flight_number", takenMsg("flight number"))
				}
			}
		}
		if req.DepartureTime != nil && !validTimeOfDay(*req.DepartureTime) {
			errs.add("departure_time", "The departure time does not match the format H:i:s.")
		}
		if req.DepartureDate != nil && !validDate(*req.DepartureDate) {
			errs.add("departure_date", "The departure date is not a valid date.")
		}
		if err := h.checkFlightRefs(r.Context(), req, errs); err != nil {
			respondServerError(w, err)
			return
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		if req.FlightNumber != nil {
			flight.FlightNumber = *req.FlightNumber
		}
		if req.DepartureTime != nil {
			flight.DepartureTime = *req.DepartureTime
		}
		if req.DepartureDate != nil {
			flight.DepartureDate = *req.DepartureDate
		}
		if req.AirlineID != nil {
			flight.AirlineID = *req.AirlineID
		}
		if req.DestinationAirportID != nil {
			flight.DestinationAirportID = *req.DestinationAirportID
		}
		if req.GateID != nil {
			flight.GateID = *req.GateID
		}
		if req.StatusID != nil {
			flight.StatusID = *req.StatusID
		}
		if err := h.deps.Repo.Flights.Update(r.Context(), flight); err != nil {
			respondServerError(w, err)
			return
		}

		updated, err := h.deps.Repo.Flights.FindByID(r.Context(), id)
		if err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Flight updated successfully", updated)
	}
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *Handlers) DeleteFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Flight")
			return
		}
		if _, err := h.deps.Repo.Flights.FindByID(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Flight")
				return
			}
			respondServerError(w, err)
			return
		}
		if err := h.deps.Repo.Flights.Delete(r.Context(), id); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Flight deleted successfully", nil)
	}
}
