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

// ListGates handles GET /api/gates
func (h *Handlers) ListGates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r).Normalized(constants.DefaultPerPage)
		gates, total, err := h.deps.Repo.Gates.List(r.Context(), q)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginated(gates, q, total))
	}
}

// CreateGate handles POST /api/gates
func (h *Handlers) CreateGate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.GateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		code := checkRequired(errs, "code", req.Code)
		checkMaxLen(errs, "code", code, 10)
		if code != "" {
			taken, err := h.deps.Repo.Gates.CodeExists(r.Context(), code, 0)
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

		gate := gormModels.Gate{Code: code}
		if err := h.deps.Repo.Gates.Create(r.Context(), &gate); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusCreated, "Gate created successfully", gate)
	}
}

// GetGate handles GET /api/gates/{id}
func (h *Handlers) GetGate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Gate")
			return
		}
		gate, err := h.deps.Repo.Gates.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Gate")
				return
			}
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.DataResponse{Data: gate})
	}
}

// UpdateGate handles PUT /api/gates/{id}
func (h *Handlers) UpdateGate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Gate")
			return
		}
		gate, err := h.deps.Repo.Gates.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Gate")
				return
			}
			respondServerError(w, err)
			return
		}

		var req dtos.GateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		if req.Code != nil {
			if *req.Code == "" {
				errs.add("code", requiredMsg("code"))
			} else {
				checkMaxLen(errs, "code", *req.Code, 10)
				taken, err := h.deps.Repo.Gates.CodeExists(r.Context(), *req.Code, id)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("code", takenMsg("code"))
				}
			}
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		if req.Code != nil {
			gate.Code = *req.Code
		}
		if err := h.deps.Repo.Gates.Update(r.Context(), gate); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Gate updated successfully", gate)
	}
}

// DeleteGate handles DELETE /api/gates/{id}. Flights assigned to the gate
// are removed with it.
func (h *Handlers) DeleteGate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Gate")
			return
		}
		if _, err := h.deps.Repo.Gates.FindByID(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Gate")
				return
			}
			respondServerError(w, err)
			return
		}
		if err := h.deps.Repo.Gates.Delete(r.Context(), id); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Gate deleted successfully", nil)
	}
}
