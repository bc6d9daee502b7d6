package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidationError reports a request that does not match the OpenAPI document.
type RequestValidationError struct {
	Err error
}

func (e *RequestValidationError) Error() string {
	return "request validation failed: " + e.Err.Error()
}

func (e *RequestValidationError) Unwrap() error {
	return e.Err
}

// NewRequestValidator returns middleware checking parameters and bodies of the
// operations declared in doc. Requests for paths outside doc pass through untouched.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return &RequestValidationError{Err: err}
			}

			return next(c)
		}
	}, nil
}
