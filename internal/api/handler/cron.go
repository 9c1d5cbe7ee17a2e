package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
)

const (
	CronJobTypeDirectory = "directory"
	CronJobTypeAll       = "all"
)

// CronJob is a background job that can also be run on demand.
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices maps a job type to its service.
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob starts a job in the background; it does not wait for it.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := param(r, "type")

		switch {
		case cronType == CronJobTypeAll:
			for _, t := range services.types() {
				services[t].TriggerManualSync()
			}
		case services[cronType] != nil:
			services[cronType].TriggerManualSync()
		default:
			accepted := append(services.types(), CronJobTypeAll)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type, accepted: "+strings.Join(accepted, ", "), nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: manual run requested")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for t, job := range services {
			status[t] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
