package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"digiboard/api/internal/auth"
	"digiboard/api/internal/logging"
	"digiboard/api/internal/models/dtos"
	"digiboard/api/internal/services"
)

// Login handles POST /api/login. On success it issues a bearer token the
// client sends on every protected request until logout.
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		errs := fieldErrors{}
		if req.Email == "" {
			errs.add("email", requiredMsg("email"))
		}
		if req.Password == "" {
			errs.add("password", requiredMsg("password"))
		}
		if !errs.empty() {
			respondValidation(w, errs)
			return
		}

		token, user, err := h.deps.Services.Auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				h.deps.Metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
				writeJSON(w, http.StatusUnauthorized, dtos.MessageResponse{Message: "Invalid credentials"})
				return
			}
			respondServerError(w, err)
			return
		}

		h.deps.Metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
		logging.Info("user logged in", "user_id", user.ID, "email", user.Email)
		writeJSON(w, http.StatusOK, dtos.LoginResponse{Token: token, User: user})
	}
}

// Logout handles POST /api/logout, revoking the presented token.
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondUnauthorized(w)
			return
		}
		if err := h.deps.Services.Auth.Logout(r.Context(), token); err != nil {
			respondServerError(w, err)
			return
		}
		respondMessage(w, http.StatusOK, "Logged out successfully", nil)
	}
}

// Me handles GET /api/user, returning the authenticated account.
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.CurrentUser(r.Context())
		if user == nil {
			respondUnauthorized(w)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
