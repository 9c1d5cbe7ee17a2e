package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/customer360-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// writeAuthError answers with the code carried by an *AuthError.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error, fallback, message string) {
	code := authenticating.CodeOf(err, fallback)

	var userID any
	if authErr, ok := asAuthError(err); ok && authErr.UserID != 0 {
		userID = map[string]int{"user_id": authErr.UserID}
	}

	log.ForContext(r.Context()).WithError(err).WithField("code", code).Warn("auth: " + message)
	apiErrors.WriteError(w, code, err.Error(), userID)
}

func asAuthError(err error) (*authenticating.AuthError, bool) {
	var authErr *authenticating.AuthError
	ok := errors.As(err, &authErr)
	return authErr, ok
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, r, err, apiErrors.ErrInternalServer, "login failed")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{"token": token})
	}
}

// GetMe returns the caller's profile.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			writeAuthError(w, r, err, apiErrors.ErrInternalServer, "could not load profile")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// ChangePassword lets a user change their own password.
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, err := intParam(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user id", nil)
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}
		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "cannot change another user's password", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeAuthError(w, r, err, apiErrors.ErrInternalServer, "could not change password")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword resets a user's password to a generated one. Admin only.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
			return
		}

		targetUserID, err := intParam(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user id", nil)
			return
		}

		password, err := service.GenerateStrongPassword(r.Context(), claims.UserID, targetUserID)
		if err != nil {
			writeAuthError(w, r, err, apiErrors.ErrInternalServer, "could not generate password")
			return
		}

		writeJSON(w, r, http.StatusOK, GeneratePasswordResponse{Password: password})
	}
}
