package api

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/logging"
	"digiboard/api/internal/models/dtos"
	gormModels "digiboard/api/internal/models/gorm"
)

const maxLogoBytes = 2 << 20

var allowedLogoExt = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".svg": true, ".webp": true,
}

type logoUpload struct {
	file   multipart.File
	header *multipart.FileHeader
}

// parseAirlineRequest accepts either a JSON body or multipart/form-data with
// an optional logo file.
func parseAirlineRequest(r *http.Request) (dtos.AirlineRequest, *logoUpload, error) {
	var req dtos.AirlineRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(8 << 20); err != nil {
			return req, nil, err
		}
		if vals := r.MultipartForm.Value["name"]; len(vals) > 0 {
			req.Name = &vals[0]
		}
		if vals := r.MultipartForm.Value["code"]; len(vals) > 0 {
			req.Code = &vals[0]
		}
		file, header, err := r.FormFile("logo")
		if err != nil {
			return req, nil, nil
		}
		return req, &logoUpload{file: file, header: header}, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, nil, err
	}
	return req, nil, nil
}

func validateLogo(errs fieldErrors, upload *logoUpload) {
	if upload == nil {
		return
	}
	if !allowedLogoExt[strings.ToLower(filepath.Ext(upload.header.Filename))] {
		errs.add("logo", "The logo must be a file of type: jpeg, png, jpg, gif, svg, webp.")
	}
	if upload.header.Size > maxLogoBytes {
		errs.add("logo", "The logo may not be greater than 2048 kilobytes.")
	}
}

// ListAirlines handles GET /api/airlines
func (h *Handlers) ListAirlines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r).Normalized(constants.DefaultPerPage)
		airlines, total, err := h.deps.Repo.Airlines.List(r.Context(), q)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginated(airlines, q, total))
	}
}

// CreateAirline handles POST /api/airlines with an optional logo upload
func (h *Handlers) CreateAirline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, upload, err := parseAirlineRequest(r)
		if err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}
		if upload != nil {
			defer upload.file.Close()
		}

		errs := fieldErrors{}
		name := checkRequired(errs, "name", req.Name)
		checkMaxLen(errs, "name", name, 255)
		code := checkRequired(errs, "code", req.Code)
		checkMaxLen(errs, "code", code, 10)
		if code != "" {
			taken, err := h.deps.Repo.Airlines.CodeExists(r.Context(), code, 0)
			if err != nil {
				respondServerError(w, err)
				return
			}
			if taken {
				errs.add("code", takenMsg("code"))
			}
		}
		validateLogo(errs, upload)
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		airline := gormModels.Airline{Name: name, Code: code}
		if upload != nil {
			path, err := h.deps.Logos.Store(upload.header.Filename, upload.file)
			if err != nil {
				respondServerError(w, err)
				return
			}
			airline.Logo = &path
		}

		if err := h.deps.Repo.Airlines.Create(r.Context(), &airline); err != nil {
			// Don't leave the fresh upload orphaned when the insert fails.
			if airline.Logo != nil {
				if derr := h.deps.Logos.Delete(*airline.Logo); derr != nil {
					logging.Warn("failed to clean up logo after insert failure", "error", derr.Error())
				}
			}
			respondServerError(w, err)
			return
		}

		respondMessage(w, http.StatusCreated, "Airline created successfully", airline)
	}
}

// GetAirline handles GET /api/airlines/{id}
func (h *Handlers) GetAirline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Airline")
			return
		}
		airline, err := h.deps.Repo.Airlines.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Airline")
				return
			}
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.DataResponse{Data: airline})
	}
}

// UpdateAirline handles PUT /api/airlines/{id} with an optional logo
// replacement. Deleting the previous logo is best-effort; a failure is
// logged, not surfaced.
func (h *Handlers) UpdateAirline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Airline")
			return
		}
		airline, err := h.deps.Repo.Airlines.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Airline")
				return
			}
			respondServerError(w, err)
			return
		}

		req, upload, err := parseAirlineRequest(r)
		if err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}
		if upload != nil {
			defer upload.file.Close()
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
				taken, err := h.deps.Repo.Airlines.CodeExists(r.Context(), *req.Code, id)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("code", takenMsg("code"))
				}
			}
		}
		validateLogo(errs, upload)
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		if req.Name != nil {
			airline.Name = *req.Name
		}
		if req.Code != nil {
			airline.Code = *req.Code
		}
		if upload != nil {
			if airline.Logo != nil && h.deps.Logos.Exists(*airline.Logo) {
				if derr := h.deps.Logos.Delete(*airline.Logo); derr != nil {
					logging.Warn("failed to delete replaced logo", "error", derr.Error())
				}
			}
			path, err := h.deps.Logos.Store(upload.header.Filename, upload.file)
			if err != nil {
				respondServerError(w, err)
				return
			}
			airline.Logo = &path
		}

		if err := h.deps.Repo.Airlines.Update(r.Context(), airline); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Airline updated successfully", airline)
	}
}

// DeleteAirline handles DELETE /api/airlines/{id}. The airline's flights go
// with it, and so does its stored logo.
func (h *Handlers) DeleteAirline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "Airline")
			return
		}
		airline, err := h.deps.Repo.Airlines.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "Airline")
				return
			}
			respondServerError(w, err)
			return
		}

		if airline.Logo != nil && h.deps.Logos.Exists(*airline.Logo) {
			if derr := h.deps.Logos.Delete(*airline.Logo); derr != nil {
				logging.Warn("failed to delete airline logo", "error", derr.Error())
			}
		}

		if err := h.deps.Repo.Airlines.Delete(r.Context(), id); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Airline deleted successfully", nil)
	}
}
