package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"crown/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestToProblem(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "bad request alert",
			err:         errs.NewBadRequestAlertError("Invalid id", "delivery", "idnull"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "error.idnull",
		},
		{
			name:        "wrapped value error",
			err:         fmt.Errorf("decode: %w", errs.NewValueIsRequiredError("recipient")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "error.validation",
		},
		{
			name:        "out of range",
			err:         errs.NewValueIsOutOfRangeError("size", 5000, 1, 2000),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "error.validation",
		},
		{
			name:        "request validation",
			err:         &RequestValidationError{Err: errors.New("property \"status\" is missing")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "error.validation",
		},
		{
			name:        "object not found",
			err:         errs.NewObjectNotFoundError("deliveryId", "42"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "error.http.404",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported"),
			wantStatus:  http.StatusUnsupportedMediaType,
			wantMessage: "error.http.415",
		},
		{
			name:        "unknown",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "error.http.500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := toProblem(tt.err)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantMessage, problem.Message)
			assert.NotEmpty(t, problem.Title)
		})
	}
}

func TestToProblem_DoesNotLeakInternalErrors(t *testing.T) {
	problem := toProblem(errors.New("pq: password authentication failed"))
	assert.Empty(t, problem.Detail)
}
