package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/HungEzz/surfsui/pkg/apiErrors"
	"github.com/HungEzz/surfsui/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the standard success response shape.
type envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Total     *int        `json:"total,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func writeSuccess(w http.ResponseWriter, data interface{}, total *int) {
	writeJSON(w, http.StatusOK, envelope{
		Success:   true,
		Data:      data,
		Total:     total,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("handler: failed to encode response")
	}
}

func withTotal(total int) *int {
	return &total
}

// handle adapts an error-returning handler function. It is the single place
// where handler errors become the error envelope; handlers themselves never
// write error responses.
func handle(fn func(w http.ResponseWriter, r *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		apiErr := apiErrors.From(err)
		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"error_code":  apiErr.Code,
			"status_code": apiErr.HTTPStatus(),
		}).WithError(apiErr)

		if apiErr.HTTPStatus() >= http.StatusInternalServerError {
			logger.Error("request failed")
		} else {
			logger.Warn("request rejected")
		}

		apiErrors.WriteError(w, apiErr)
	})
}

// NotFoundHandler answers unmatched routes with the standard 404 envelope.
func NotFoundHandler() http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		return apiErrors.NotFound(
			apiErrors.CodeNotFound,
			"Route "+r.Method+" "+r.URL.Path+" not found",
		)
	})
}
