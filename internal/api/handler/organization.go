package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/usecases/navigating"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
)

// GetDashboardSummary serves the group, OpCo or business-unit summary
// depending on which query parameters are set.
func GetDashboardSummary(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		summary, err := service.Dashboard(r.Context(), navigating.Selection{
			OpCo:         q.Get("opco"),
			BusinessUnit: q.Get("business_unit"),
		})
		if err != nil {
			writeBackendError(w, r, err, "could not load dashboard summary")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

func ListOpCos(integrator customer360.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opcos, err := integrator.ListOpCos(r.Context())
		if err != nil {
			writeBackendError(w, r, err, "could not list opcos")
			return
		}

		writeJSON(w, r, http.StatusOK, opcos)
	}
}

func ListBusinessUnits(integrator customer360.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		units, err := integrator.ListBusinessUnits(r.Context())
		if err != nil {
			writeBackendError(w, r, err, "could not list business units")
			return
		}

		writeJSON(w, r, http.StatusOK, units)
	}
}

// orgResource serves a resource keyed by the :id path parameter and the
// optional opco query parameter.
func orgResource[T any](name string, fetch func(ctx context.Context, id, opCoID string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fetch(r.Context(), param(r, "id"), r.URL.Query().Get("opco"))
		if err != nil {
			writeBackendError(w, r, err, "could not load "+name)
			return
		}

		writeJSON(w, r, http.StatusOK, out)
	}
}

func GetOpCoStats(integrator customer360.Integrator) http.HandlerFunc {
	return orgResource("opco stats", func(ctx context.Context, id, _ string) (any, error) {
		return integrator.GetOpCoStats(ctx, id)
	})
}

func GetOpCoDashboard(integrator customer360.Integrator) http.HandlerFunc {
	return orgResource("opco dashboard", func(ctx context.Context, id, _ string) (any, error) {
		return integrator.GetOpCoDashboard(ctx, id)
	})
}

func ListOpCoCustomers(integrator customer360.Integrator) http.HandlerFunc {
	return orgResource("opco customers", func(ctx context.Context, id, _ string) (any, error) {
		return integrator.ListOpCoCustomers(ctx, id)
	})
}

func GetBusinessUnitStats(integrator customer360.Integrator) http.HandlerFunc {
	return orgResource("business unit stats", func(ctx context.Context, id, _ string) (any, error) {
		return integrator.GetBusinessUnitStats(ctx, id)
	})
}

func GetBusinessUnitDashboard(integrator customer360.Integrator) http.HandlerFunc {
	return orgResource("business unit dashboard", func(ctx context.Context, id, opCoID string) (any, error) {
		return integrator.GetBusinessUnitDashboard(ctx, id, opCoID)
	})
}

func ListBusinessUnitCustomers(integrator customer360.Integrator) http.HandlerFunc {
	return orgResource("business unit customers", func(ctx context.Context, id, opCoID string) (any, error) {
		return integrator.ListBusinessUnitCustomers(ctx, id, opCoID)
	})
}
