package handler

import (
	"net/http"

	"github.com/vfg2006/customer360-api/internal/usecases/segmenting"
	"github.com/vfg2006/customer360-api/pkg/apiErrors"
)

// GetSegment lists the customers of a health or region segment. Without
// type and value it lists everyone.
func GetSegment(service segmenting.Segmenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter, err := segmenting.ParseFilter(q.Get("type"), q.Get("value"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSegment, "type must be health or region and value is required", map[string]string{
				"type":  q.Get("type"),
				"value": q.Get("value"),
			})
			return
		}

		view, err := service.Segment(r.Context(), filter)
		if err != nil {
			writeBackendError(w, r, err, "could not load segment")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}

func GetAtRisk(service segmenting.Segmenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.AtRisk(r.Context())
		if err != nil {
			writeBackendError(w, r, err, "could not load at-risk customers")
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}
