package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/models/dtos"
	gormModels "digiboard/api/internal/models/gorm"
)

// ListAirports handles GET /api/airports
func (h *Handlers) ListAirports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r).Normalized(constants.DefaultPerPage)
		airports, total, err := h.deps.Repo.Airports.List(r.Context(), q)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginated(airports, q, total))
	}
}

// CreateAirport handles POST /api/airports
func (h *Handlers) CreateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AirportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		name := checkRequired(errs, "name", req.Name)
		checkMaxLen(errs, "name", name, 255)
		code := checkRequired(errs, "code", req.Code)
		checkMaxLen(errs, "code", code, 10)
		city := checkRequired(errs, "city", req.City)
		checkMaxLen(errs, "city", city, 100)
		country := checkRequired(errs, "country", req.Country)
		checkMaxLen(errs, "country", country, 100)
		if code != "" {
			taken, err := h.deps.Repo.Airports.CodeExists(r.Context(), code, 0)
			if err != nil {
				respondServerError(w, err)
				return
			}
			if taken {
				errs.add("code", takenMsg("code"))
			}
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		airport := gormModels.Airport{Name: name, Code: code, City: city, Country: country}
		if err := h.deps.Repo.Airports.Create(r.Context(), &airport); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusCreated, "Airport created successfully", airport)
	}
}

// GetAirport handles GET /api/airports/{id}
func (h *Handlers) GetAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Airport")
			return
		}
		airport, err := h.deps.Repo.Airports.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Airport")
				return
			}
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.DataResponse{Data: airport})
	}
}

// UpdateAirport handles PUT /api/airports/{id}
func (h *Handlers) UpdateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Airport")
			return
		}
		airport, err := h.deps.Repo.Airports.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Airport")
				return
			}
			respondServerError(w, err)
			return
		}

		var req dtos.AirportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		if req.Name != nil {
			if *req.Name == "" {
				errs.add("name", requiredMsg("name"))
			}
			checkMaxLen(errs, "name", *req.Name, 255)
		}
		if req.Code != nil {
			if *req.Code == "" {
				errs.add("code", requiredMsg("code"))
			} else {
				checkMaxLen(errs, "code", *req.Code, 10)
				taken, err := h.deps.Repo.Airports.CodeExists(r.Context(), *req.Code, id)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("code", takenMsg("code"))
				}
			}
		}
		if req.City != nil {
			if *req.City == "" {
				errs.add("city", requiredMsg("city"))
			}
			checkMaxLen(errs, "city", *req.City, 100)
		}
		if req.Country != nil {
			if *req.Country == "" {
				errs.add("country", requiredMsg("country"))
			}
			checkMaxLen(errs, "country", *req.Country, 100)
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		if req.Name != nil {
			airport.Name = *req.Name
		}
		if req.Code != nil {
			airport.Code = *req.Code
		}
		if req.City != nil {
			airport.City = *req.City
		}
		if req.Country != nil {
			airport.Country = *req.Country
		}

		if err := h.deps.Repo.Airports.Update(r.Context(), airport); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Airport updated successfully", airport)
	}
}

// DeleteAirport handles DELETE /api/airports/{id}. Flights destined for the
// airport are removed with it.
func (h *Handlers) DeleteAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Airport")
			return
		}
		if _, err := h.deps.Repo.Airports.FindByID(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Airport")
				return
			}
			respondServerError(w, err)
			return
		}
		if err := h.deps.Repo.Airports.Delete(r.Context(), id); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Airport deleted successfully", nil)
	}
}
