package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

type stubJob struct {
	runs int
}

func (j *stubJob) TriggerManualSync() { j.runs++ }

func (j *stubJob) GetStatus() map[string]any {
	return map[string]any{"runs": j.runs}
}

func TestRunCronJob(t *testing.T) {
	log.SetupTestLogger()

	job := &stubJob{}
	routes := CronJobs(CronJobServices{CronJobTypeDirectory: job})

	rec := serve(t, routes, testRequest{method: http.MethodPost, path: "/v1/cron/run/directory", roleID: middleware.RoleAdmin})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, 1, job.runs)

	rec = serve(t, routes, testRequest{method: http.MethodPost, path: "/v1/cron/run/all", roleID: middleware.RoleAdmin})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, job.runs)

	rec = serve(t, routes, testRequest{method: http.MethodPost, path: "/v1/cron/run/meta", roleID: middleware.RoleAdmin})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[apiErrors.APIError](t, rec)
	assert.Equal(t, apiErrors.ErrInvalidRequest, body.Code)
	assert.True(t, strings.HasSuffix(body.Message, "directory, all"), body.Message)

	rec = serve(t, routes, testRequest{method: http.MethodPost, path: "/v1/cron/run/directory", roleID: middleware.RoleAnalyst})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 2, job.runs)
}

func TestGetCronStatus(t *testing.T) {
	log.SetupTestLogger()

	routes := CronJobs(CronJobServices{CronJobTypeDirectory: &stubJob{runs: 3}})

	rec := serve(t, routes, testRequest{method: http.MethodGet, path: "/v1/cron/status", roleID: middleware.RoleExecutive})
	require.Equal(t, http.StatusOK, rec.Code)

	status := decode[map[string]map[string]float64](t, rec)
	assert.Equal(t, float64(3), status[CronJobTypeDirectory]["runs"])
}
