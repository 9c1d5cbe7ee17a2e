package handler

import (
	"context"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/c360client"
	"github.com/vfg2006/customer360-api/infrastructure/integrator/customer360/schema"
	"github.com/vfg2006/customer360-api/internal/usecases/acting"
	"github.com/vfg2006/customer360-api/internal/usecases/chatting"
	"github.com/vfg2006/customer360-api/internal/usecases/navigating"
	"github.com/vfg2006/customer360-api/internal/usecases/organizing"
	"github.com/vfg2006/customer360-api/internal/usecases/personalizing"
	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
	"github.com/vfg2006/customer360-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: encode response")
	}
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(param(r, name))
}

// errorCode maps use case and integration errors to API codes. Errors that
// match nothing get fallback.
func errorCode(err error, fallback string) string {
	switch {
	case errors.Is(err, personalizing.ErrUnknownPersona):
		return apiErrors.ErrUnknownPersona
	case errors.Is(err, segmenting.ErrInvalidFilter):
		return apiErrors.ErrInvalidSegment
	case errors.Is(err, navigating.ErrInvalidTransition):
		return apiErrors.ErrInvalidTransition
	case errors.Is(err, acting.ErrMissingActionID):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, acting.ErrActionInFlight), errors.Is(err, acting.ErrBannerShowing):
		return apiErrors.ErrActionInFlight
	case errors.Is(err, chatting.ErrSessionNotFound):
		return apiErrors.ErrSessionNotFound
	case errors.Is(err, chatting.ErrSessionBusy):
		return apiErrors.ErrSessionBusy
	case errors.Is(err, organizing.ErrSuperseded):
		return apiErrors.ErrSuperseded
	case errors.Is(err, schema.ErrInvalidPayload):
		return apiErrors.ErrExternalService
	case errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrCommunication
	}

	if apiErr, ok := c360client.AsAPIError(err); ok {
		if apiErr.NotFound() {
			return apiErrors.ErrResourceNotFound
		}
		return apiErrors.ErrExternalService
	}

	return fallback
}

// writeError logs err and answers with the mapped code. Backend failures
// carry the failing operation in the details.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback, message string) {
	code := errorCode(err, fallback)

	var details any
	if apiErr, ok := c360client.AsAPIError(err); ok {
		details = map[string]any{
			"operation":   apiErr.Op,
			"status_code": apiErr.StatusCode,
		}
		if apiErr.NotFound() && apiErr.Message != "" {
			message = apiErr.Message
		}
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("handler: " + message)
	} else {
		logger.Warn("handler: " + message)
	}

	apiErrors.WriteError(w, code, message, details)
}

// writeBackendError is writeError for calls that reach the analytics backend.
// Unclassified failures are treated as the backend being unreachable.
func writeBackendError(w http.ResponseWriter, r *http.Request, err error, message string) {
	writeError(w, r, err, apiErrors.ErrCommunication, message)
}
