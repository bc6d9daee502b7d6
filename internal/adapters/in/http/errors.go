package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"crown/internal/generated/servers"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/headers"

	"github.com/labstack/echo/v4"
)

const (
	mimeProblemJSON = "application/problem+json"

	problemWithMessageType  = "/problems/problem-with-message"
	constraintViolationType = "/problems/constraint-violation"
)

// NewHTTPErrorHandler renders every error escaping a handler as problem JSON.
// Bad request alerts also get the failure alert headers.
func NewHTTPErrorHandler(alert headers.Alert, logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		problem := toProblem(err)

		var alertErr *errs.BadRequestAlertError
		if errors.As(err, &alertErr) {
			headers.Copy(c.Response().Header(), alert.Failure(alertErr.EntityName, alertErr.ErrorKey, alertErr.Message))
		}

		ctx := c.Request().Context()
		if problem.Status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
		} else {
			logger.DebugContext(ctx, "request rejected",
				"method", c.Request().Method, "path", c.Path(), "status", problem.Status, "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(problem.Status)
		} else {
			c.Response().Header().Set(echo.HeaderContentType, mimeProblemJSON)
			writeErr = c.JSON(problem.Status, problem)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx, "failed to write error response", "error", writeErr)
		}
	}
}

func toProblem(err error) servers.Problem {
	var (
		alertErr      *errs.BadRequestAlertError
		validationErr *RequestValidationError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &alertErr):
		return servers.Problem{
			Type:       problemWithMessageType,
			Title:      alertErr.Message,
			Status:     http.StatusBadRequest,
			EntityName: alertErr.EntityName,
			ErrorKey:   alertErr.ErrorKey,
			Message:    "error." + alertErr.ErrorKey,
			Params:     alertErr.EntityName,
		}
	case errors.As(err, &validationErr):
		return servers.Problem{
			Type:    constraintViolationType,
			Title:   "Method argument not valid",
			Status:  http.StatusBadRequest,
			Detail:  validationErr.Err.Error(),
			Message: "error.validation",
		}
	case isValueError(err):
		return servers.Problem{
			Type:    constraintViolationType,
			Title:   http.StatusText(http.StatusBadRequest),
			Status:  http.StatusBadRequest,
			Detail:  err.Error(),
			Message: "error.validation",
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		return statusProblem(http.StatusNotFound, err.Error())
	case errors.As(err, &httpErr):
		return statusProblem(httpErr.Code, fmt.Sprint(httpErr.Message))
	default:
		return statusProblem(http.StatusInternalServerError, "")
	}
}

func statusProblem(status int, detail string) servers.Problem {
	return servers.Problem{
		Title:   http.StatusText(status),
		Status:  status,
		Detail:  detail,
		Message: "error.http." + strconv.Itoa(status),
	}
}

func isValueError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
