package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"digiboard/api/internal/constants"
	"digiboard/api/internal/db/repositories"
	"digiboard/api/internal/models/dtos"
	gormModels "digiboard/api/internal/models/gorm"
)

const minPasswordLen = 8

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

// ListUsers handles GET /api/users
func (h *Handlers) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r).Normalized(constants.DefaultPerPage)
		users, total, err := h.deps.Repo.Users.List(r.Context(), q)
		if err != nil {
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, paginated(users, q, total))
	}
}

// CreateUser handles POST /api/users
func (h *Handlers) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		name := checkRequired(errs, "name", req.Name)
		checkMaxLen(errs, "name", name, 255)
		email := checkRequired(errs, "email", req.Email)
		if email != "" {
			checkMaxLen(errs, "email", email, 255)
			if !validEmail(email) {
				errs.add("email", "The email must be a valid email address.")
			} else {
				taken, err := h.deps.Repo.Users.EmailExists(r.Context(), email, 0)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("email", takenMsg("email"))
				}
			}
		}
		password := checkRequired(errs, "password", req.Password)
		if password != "" && len(password) < minPasswordLen {
			errs.add("password", "The password must be at least 8 characters.")
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			respondServerError(w, err)
			return
		}

		user := gormModels.User{Name: name, Email: email, Password: string(hash)}
		if err := h.deps.Repo.Users.Create(r.Context(), &user); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusCreated, "User created successfully", user)
	}
}

// GetUser handles GET /api/users/{id}
func (h *Handlers) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "User")
			return
		}
		user, err := h.deps.Repo.Users.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "User")
				return
			}
			respondServerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dtos.DataResponse{Data: user})
	}
}

// UpdateUser handles PUT /api/users/{id}. Password is only rehashed when the
// request carries one.
func (h *Handlers) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "User")
			return
		}
		user, err := h.deps.Repo.Users.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "User")
				return
			}
			respondServerError(w, err)
			return
		}

		var req dtos.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		if req.Name != nil {
			if *req.Name == "" {
				errs.add("name", requiredMsg("name"))
			} else {
				checkMaxLen(errs, "name", *req.Name, 255)
			}
		}
		if req.Email != nil {
			switch {
			case *req.Email == "":
				errs.add("email", requiredMsg("email"))
			case !validEmail(*req.Email):
				errs.add("email", "The email must be a valid email address.")
			default:
				checkMaxLen(errs, "email", *req.Email, 255)
				taken, err := h.deps.Repo.Users.EmailExists(r.Context(), *req.Email, id)
				if err != nil {
					respondServerError(w, err)
					return
				}
				if taken {
					errs.add("email", takenMsg("email"))
				}
			}
		}
		if req.Password != nil && len(*req.Password) < minPasswordLen {
			errs.add("password", "The password must be at least 8 characters.")
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				respondServerError(w, err)
				return
			}
			user.Password = string(hash)
		}
		if err := h.deps.Repo.Users.Update(r.Context(), user); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "User updated successfully", user)
	}
}

// DeleteUser handles DELETE /api/users/{id}. Flights managed by the user are
// removed with the account.
func (h *Handlers) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondNotFound(w, "User")
			return
		}
		if _, err := h.deps.Repo.Users.FindByID(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				respondNotFound(w, "User")
				return
			}
			respondServerError(w, err)
			return
		}
		if err := h.deps.Repo.Users.Delete(r.Context(), id); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "User deleted successfully", nil)
	}
}
