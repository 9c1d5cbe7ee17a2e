package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/navigating"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

type DrillRequest struct {
	State navigating.DrillDown  `json:"state"`
	Event navigating.DrillEvent `json:"event"`
	OpCo  string                `json:"opco,omitempty"`
}

// DrillResponse carries the next state and the data its level shows. When
// that data cannot be loaded View is empty and DataIssues says why.
type DrillResponse struct {
	State      navigating.DrillDown `json:"state"`
	Level      navigating.Level     `json:"level"`
	CanGoBack  bool                 `json:"can_go_back"`
	View       any                  `json:"view,omitempty"`
	DataIssues []domain.DataIssue   `json:"data_issues"`
}

type DrillDeps struct {
	Integrator customer360.Integrator
	Segmenter  segmenting.Segmenter
	Organizer  organizing.Organizer
}

func DrillDown(deps DrillDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DrillRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		next, err := navigating.ApplyDrill(req.State, req.Event)
		if err != nil {
			writeError(w, r, err, apiErrors.ErrInvalidTransition, "invalid drill-down transition")
			return
		}

		resp := DrillResponse{
			State:      next,
			Level:      next.Level(),
			CanGoBack:  next.CanGoBack(),
			DataIssues: []domain.DataIssue{},
		}

		view, err := drillView(r.Context(), deps, next, req.OpCo)
		if err != nil {
			resp.DataIssues = append(resp.DataIssues, domain.DataIssue{Field: "view", Message: err.Error()})
		} else {
			resp.View = view
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func drillView(ctx context.Context, deps DrillDeps, d navigating.DrillDown, opCoID string) (any, error) {
	switch d.Level() {
	case navigating.LevelProfile:
		customer, err := deps.Integrator.GetCustomer(ctx, d.SelectedCustomerID)
		if err != nil {
			return nil, err
		}
		return newCustomerProfile(customer, time.Now()), nil
	case navigating.LevelCustomerList:
		return deps.Segmenter.Segment(ctx, d.Filter)
	case navigating.LevelMetric:
		if d.View == navigating.ViewAtRisk {
			return deps.Segmenter.AtRisk(ctx)
		}
		return deps.Organizer.Dashboard(ctx, navigating.Selection{OpCo: opCoID})
	default:
		return nil, nil
	}
}

type SelectionRequest struct {
	Session string                    `json:"session,omitempty"`
	State   navigating.ViewState      `json:"state"`
	Event   navigating.SelectionEvent `json:"event"`
}

// Select applies an organization switcher event. Business-unit selections
// recheck the selected customer; an older check still running for the same
// session is cancelled and answers 409.
func Select(service organizing.Organizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectionRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		session := req.Session
		if session == "" {
			if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
				session = fmt.Sprintf("user-%d", claims.UserID)
			}
		}

		state := navigating.NewViewState(req.State.Selection)
		next, err := service.Apply(r.Context(), session, state, req.Event)
		if err != nil {
			writeError(w, r, err, apiErrors.ErrInternalServer, "could not apply selection")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"state": next})
	}
}
