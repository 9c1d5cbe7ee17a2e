package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/c360client"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/internal/usecases/acting"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/middleware"
)

type ExecuteActionRequest struct {
	CustomerID string         `json:"customer_id"`
	ActionType string         `json:"action_type"`
	Context    map[string]any `json:"context"`
}

// ExecuteAction runs a recommended action. Resending the same
// Idempotency-Key replays the first result. With refetch=true the
// customer's recommendations are reloaded after a success.
func ExecuteAction(service acting.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExecuteActionRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		q := r.URL.Query()
		if customerID := q.Get("customer_id"); customerID != "" {
			req.CustomerID = customerID
		}
		refetch, _ := strconv.ParseBool(q.Get("refetch"))

		cmd := domain.ActionCommand{
			ActionID:       param(r, "id"),
			IdempotencyKey: r.Header.Get(c360client.IdempotencyHeader),
			CustomerID:     req.CustomerID,
			ActionType:     req.ActionType,
			Context:        req.Context,
		}
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			cmd.RequestedBy = claims.UserID
		}

		execution, err := service.Execute(r.Context(), cmd, refetch)
		if err != nil {
			writeError(w, r, err, apiErrors.ErrInternalServer, "could not execute action")
			return
		}

		w.Header().Set(c360client.IdempotencyHeader, execution.Result.IdempotencyKey)
		writeJSON(w, r, http.StatusOK, execution)
	}
}

// GetActionStatus returns the button and banner state of an action.
func GetActionStatus(service acting.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Status(param(r, "id")))
	}
}
