package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		validator  stubValidator
		wantStatus int
	}{
		{name: "public path", path: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "missing header", path: "/v1/customers", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", path: "/v1/customers", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "invalid token",
			path:       "/v1/customers",
			header:     "Bearer bad",
			validator:  stubValidator{err: errors.New("bad token")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			path:       "/v1/customers",
			header:     "Bearer good",
			validator:  stubValidator{claims: &domain.Claims{UserID: 7, UserRoleID: RoleAnalyst}},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func withClaims(req *http.Request, roleID int) *http.Request {
	ctx := context.WithValue(req.Context(), ContextKeyUser, &domain.Claims{UserID: 1, UserRoleID: roleID})
	return req.WithContext(ctx)
}

func TestRoleMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/users", nil), RoleAnalyst)
	AdminOnly()(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = withClaims(httptest.NewRequest(http.MethodGet, "/v1/users", nil), RoleAdmin)
	AdminOnly()(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	AllRoles()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPersonaAccess(t *testing.T) {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/v1/customers/:id/personas/:persona", PersonaAccess()(okHandler))

	serve := func(roleID int, persona string) int {
		rec := httptest.NewRecorder()
		req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/customers/C1/personas/"+persona, nil), roleID)
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, serve(RoleAnalyst, "board"))
	assert.Equal(t, http.StatusForbidden, serve(RoleAnalyst, "ceo"))
	assert.Equal(t, http.StatusNoContent, serve(RoleAnalyst, "billing"))
	assert.Equal(t, http.StatusNoContent, serve(RoleExecutive, "board"))
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/opcos", nil)
	req.Header.Set(log.CorrelationHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(log.CorrelationHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/opcos", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
