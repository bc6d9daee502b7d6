package servers

import (
	"fmt"
	"net/http"

	"crown/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get a page of deliveries
	// (GET /api/deliveries)
	GetAllDeliveries(ctx echo.Context, params GetAllDeliveriesParams) error
	// Create a new delivery
	// (POST /api/deliveries)
	CreateDelivery(ctx echo.Context) error
	// Replace an existing delivery
	// (PUT /api/deliveries)
	UpdateDelivery(ctx echo.Context) error
	// Delete a delivery by id
	// (DELETE /api/deliveries/{id})
	DeleteDelivery(ctx echo.Context, id string) error
	// Get a delivery by id
	// (GET /api/deliveries/{id})
	GetDelivery(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetAllDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) GetAllDeliveries(ctx echo.Context) error {
	var err error

	var params GetAllDeliveriesParams

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}

	err = w.Handler.GetAllDeliveries(ctx, params)
	return err
}

// CreateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDelivery(ctx echo.Context) error {
	return w.Handler.CreateDelivery(ctx)
}

// UpdateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDelivery(ctx echo.Context) error {
	return w.Handler.UpdateDelivery(ctx)
}

// DeleteDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteDelivery(ctx echo.Context) error {
	var err error
	var id string

	err = runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, ctx.Param("id"), &id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	err = w.Handler.DeleteDelivery(ctx, id)
	return err
}

// GetDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	var err error
	var id string

	err = runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, ctx.Param("id"), &id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	err = w.Handler.GetDelivery(ctx, id)
	return err
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/deliveries", wrapper.GetAllDeliveries)
	router.POST(baseURL+"/api/deliveries", wrapper.CreateDelivery)
	router.PUT(baseURL+"/api/deliveries", wrapper.UpdateDelivery)
	router.DELETE(baseURL+"/api/deliveries/:id", wrapper.DeleteDelivery)
	router.GET(baseURL+"/api/deliveries/:id", wrapper.GetDelivery)
}

// GetSwagger returns the parsed OpenAPI document embedded in the api package.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return swagger, nil
}
