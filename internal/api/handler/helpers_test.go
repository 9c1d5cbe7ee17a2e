package handler

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/mocks"
	"github.com/vfg2006/customer360-api/internal/api/handler/router"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

func newIntegrator(t *testing.T) *mocks.MockIntegrator {
	t.Helper()
	log.SetupTestLogger()
	return mocks.NewMockIntegrator(gomock.NewController(t))
}

type testRequest struct {
	method  string
	path    string
	body    string
	roleID  int
	headers map[string]string
}

// serve routes req through routes with the caller authenticated as roleID.
// A zero roleID sends the request anonymously.
func serve(t *testing.T, routes []router.Route, req testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.body != "" {
		body = bytes.NewBufferString(req.body)
	}

	r := httptest.NewRequest(req.method, req.path, body)
	for k, v := range req.headers {
		r.Header.Set(k, v)
	}
	if req.roleID != 0 {
		claims := &domain.Claims{UserID: 42, UserRoleID: req.roleID}
		r = r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, r)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apiErrors.APIError](t, rec).Code
}
