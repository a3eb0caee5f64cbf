package apiErrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusByKind(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
	}{
		{"validation maps to 400", Validation(CodeInvalidLimit, "limit out of range"), http.StatusBadRequest},
		{"not found maps to 404", NotFound(CodeCategoryNotFound, "category not found"), http.StatusNotFound},
		{"unavailable maps to 503", Unavailable(errors.New("dial refused"), "database unavailable"), http.StatusServiceUnavailable},
		{"store maps to 500", Store(errors.New("syntax error"), "failed to query rankings"), http.StatusInternalServerError},
		{"internal maps to 500", Internal(errors.New("boom"), "internal server error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
		})
	}
}

func TestFromNormalizesUnknownErrors(t *testing.T) {
	apiErr := From(errors.New("driver: bad connection"))

	assert.Equal(t, KindInternal, apiErr.Kind)
	assert.Equal(t, CodeInternalError, apiErr.Code)
	// The raw cause must not become the client message.
	assert.Equal(t, "Internal server error", apiErr.Message)
}

func TestFromKeepsTypedErrors(t *testing.T) {
	original := Validation(CodeInvalidCategory, "category must be one of the known set")
	assert.Same(t, original, From(original))
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, Store(errors.New("relation does not exist"), "Failed to retrieve DApp rankings"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Timestamp string `json:"timestamp"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, CodeDatabaseError, body.Error.Code)
	assert.Equal(t, "Failed to retrieve DApp rankings", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "relation")
	assert.NotEmpty(t, body.Timestamp)
}
