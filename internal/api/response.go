package api

import (
	"encoding/json"
	"net/http"

	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/logging"
	"digiboard/api/internal/models/dtos"
)

// paginated builds the list envelope. The query must already be normalized
// so the page numbers echo what was actually applied.
func paginated[T any](items []T, q repositories.ListQuery, total int64) dtos.Paginated {
	return dtos.Paginated{
		Data:        items,
		CurrentPage: q.Page,
		PerPage:     q.PerPage,
		Total:       total,
		LastPage:    repositories.LastPage(total, q.PerPage),
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

func respondMessage(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, dtos.MessageResponse{Message: message, Data: data})
}

// respondNotFound emits the 404 body, e.g. {"message":"Airline not found"}.
func respondNotFound(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusNotFound, dtos.MessageResponse{Message: entity + " not found"})
}

func respondValidation(w http.ResponseWriter, errs fieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, dtos.ValidationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  errs,
	})
}

func respondUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, dtos.MessageResponse{Message: "Unauthenticated."})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, dtos.MessageResponse{Message: message})
}

func respondServerError(w http.ResponseWriter, err error) {
	logging.Error("request failed", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, dtos.MessageResponse{Message: "Server Error"})
}
