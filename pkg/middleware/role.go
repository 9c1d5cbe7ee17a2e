package middleware

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
)

const (
	RoleAdmin     = 1
	RoleExecutive = 2
	RoleAnalyst   = 3
)

// executivePersonas are only visible to admins and executives.
var executivePersonas = []string{"board", "ceo"}

// RoleMiddleware restricts a route to the given role ids.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("middleware: unauthenticated access attempt")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":   userClaims.UserID,
					"user_role": userClaims.UserRoleID,
				}).Warn("middleware: access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

func AdminOrExecutive() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleExecutive})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleExecutive, RoleAnalyst})
}

// CanViewPersona reports whether a role may open a persona dashboard.
func CanViewPersona(roleID int, persona string) bool {
	if roleID == RoleAdmin || roleID == RoleExecutive {
		return true
	}
	return !slices.Contains(executivePersonas, persona)
}

// PersonaAccess guards routes carrying a :persona parameter.
func PersonaAccess() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			persona := httprouter.ParamsFromContext(r.Context()).ByName("persona")
			if !CanViewPersona(userClaims.UserRoleID, persona) {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "persona not available for your role", map[string]string{
					"persona": persona,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
