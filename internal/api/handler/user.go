package handler

import (
	"net/http"

	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

// GetUser returns a user by id. Non-admins may only read themselves.
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user id", nil)
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || (claims.UserID != id && claims.UserRoleID != middleware.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to read this user", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeAuthError(w, r, err, apiErrors.ErrDatabaseOperation, "could not load user")
			return
		}
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "user not found", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// CreateUser registers a user. The password travels in the password field.
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name, email and password are required", nil)
			return
		}

		// only admins pick a role
		if claims, ok := middleware.ClaimsFromContext(r.Context()); !ok || claims.UserRoleID != middleware.RoleAdmin {
			user.RoleID = 0
		}

		created, err := service.CreateUser(r.Context(), &user)
		if err != nil {
			writeAuthError(w, r, err, apiErrors.ErrDatabaseOperation, "could not create user")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			writeAuthError(w, r, err, apiErrors.ErrDatabaseOperation, "could not list users")
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}

// UpdateUser edits a user. Users may edit themselves; only admins change roles.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid user id", nil)
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || (claims.UserID != id && claims.UserRoleID != middleware.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to edit this user", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		req.ID = id

		if req.RoleID != nil && claims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can change roles", nil)
			return
		}

		if err := service.UpdateUser(r.Context(), &req); err != nil {
			writeAuthError(w, r, err, apiErrors.ErrDatabaseOperation, "could not update user")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
