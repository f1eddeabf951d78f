package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/models/dtos"
	gormModels "digiboard/api/internal/models/gorm"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ListFlightStatuses handles GET /api/flight-statuses
func (h *Handlers) ListFlightStatuses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r).Normalized(constants.DefaultPerPage)
		statuses, total, err := h.deps.Repo.Statuses.List(r.Context(), q)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginated(statuses, q, total))
	}
}

// CreateFlightStatus handles POST /api/flight-statuses. Statuses are an open
// lookup, so operators can add labels beyond the seeded six.
func (h *Handlers) CreateFlightStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.FlightStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		name := checkRequired(errs, "name", req.Name)
		checkMaxLen(errs, "name", name, 50)
		color := checkRequired(errs, "color", req.Color)
		if color != "" && !hexColorRe.MatchString(color) {
			errs.add("color", "The color must be a hex color like #22c55e.")
		}
		if name != "" {
			taken, err := h.deps.Repo.Statuses.NameExists(r.Context(), name, 0)
			if err != nil {
				respondServerError(w, err)
				return
			}
			if taken {
				errs.add("name", takenMsg("name"))
			}
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		status := gormModels.FlightStatus{Name: name, Color: color}
		if err := h.deps.Repo.Statuses.Create(r.Context(), &status); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusCreated, "Flight status created successfully", status)
	}
}

// GetFlightStatus handles GET /api/flight-statuses/{id}
func (h *Handlers) GetFlightStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Flight status")
			return
		}
		status, err := h.deps.Repo.Statuses.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Flight status")
				return
			}
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.DataResponse{Data: status})
	}
}

// UpdateFlightStatus handles PUT /api/flight-statuses/{id}
func (h *Handlers) UpdateFlightStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Flight status")
			return
		}
		status, err := h.deps.Repo.Statuses.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Flight status")
				return
			}
			respondServerError(w, err)
			return
		}

		var req dtos.FlightStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		if req.Name != nil {
			if *req.Name == "" {
				errs.add("name", requiredMsg("name"))
			} else {
				checkMaxLen(errs, "name", *req.Name, 50)
				taken, err := h.deps.Repo.Statuses.NameExists(r.Context(), *req.Name, id)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("name", takenMsg("name"))
				}
			}
		}
		if req.Color != nil {
			if *req.Color == "" {
				errs.add("color", requiredMsg("color"))
			} else if !hexColorRe.MatchString(*req.Color) {
				errs.add("color", "The color must be a hex color like #22c55e.")
			}
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		if req.Name != nil {
			status.Name = *req.Name
		}
		if req.Color != nil {
			status.Color = *req.Color
		}
		if err := h.deps.Repo.Statuses.Update(r.Context(), status); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Flight status updated successfully", status)
	}
}

// DeleteFlightStatus handles DELETE /api/flight-statuses/{id}. Flights
// carrying the status are removed with it.
func (h *Handlers) DeleteFlightStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Flight status")
			return
		}
		if _, err := h.deps.Repo.Statuses.FindByID(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Flight status")
				return
			}
			respondServerError(w, err)
			return
		}
		if err := h.deps.Repo.Statuses.Delete(r.Context(), id); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Flight status deleted successfully", nil)
	}
}
