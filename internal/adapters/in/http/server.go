package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"crown/internal/core/application/usecases/commands"
	"crown/internal/core/application/usecases/queries"
	"crown/internal/core/domain/model/delivery"
	"crown/internal/generated/servers"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/headers"
	"crown/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
)

const resourcePath = "/api/deliveries"

// EndpointConfig carries the values the endpoint needs besides its handlers.
type EndpointConfig struct {
	ApplicationName   string
	EntityName        string
	EnableTranslation bool
	DefaultPageSize   int
	MaxPageSize       int
}

// Server implements servers.ServerInterface for the delivery resource.
// It coordinates between HTTP handlers and application use cases and keeps no
// per-request state.
type Server struct {
	config EndpointConfig
	alert  headers.Alert
	logger *slog.Logger

	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler

	// Query handlers
	getDeliveryHandler    queries.GetDeliveryQueryHandler
	listDeliveriesHandler queries.ListDeliveriesQueryHandler
}

// NewServer creates the delivery endpoint. A nil logger falls back to slog.Default.
func NewServer(
	config EndpointConfig,
	logger *slog.Logger,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if config.EntityName == "" {
		config.EntityName = "delivery"
	}
	if config.DefaultPageSize <= 0 {
		config.DefaultPageSize = pagination.DefaultPageSize
	}
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = pagination.DefaultMaxSize
	}

	return &Server{
		config:                config,
		alert:                 headers.NewAlert(config.ApplicationName, config.EnableTranslation),
		logger:                logger,
		createDeliveryHandler: createDeliveryHandler,
		updateDeliveryHandler: updateDeliveryHandler,
		deleteDeliveryHandler: deleteDeliveryHandler,
		getDeliveryHandler:    getDeliveryHandler,
		listDeliveriesHandler: listDeliveriesHandler,
	}
}

// CreateDelivery handles POST /api/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body servers.CreateDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	s.logger.DebugContext(ctx.Request().Context(), "REST request to save Delivery", "delivery", body)

	if body.Id != nil {
		return errs.NewBadRequestAlertError("A new delivery cannot already have an ID", s.config.EntityName, "idexists")
	}

	attrs, err := toAttributes(body)
	if err != nil {
		return err
	}
	d, err := delivery.NewDelivery(attrs)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateDeliveryCommand(d)
	if err != nil {
		return err
	}

	saved, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	h := ctx.Response().Header()
	h.Set(echo.HeaderLocation, resourcePath+"/"+url.PathEscape(saved.ID()))
	headers.Copy(h, s.alert.EntityCreation(s.config.EntityName, saved.ID()))
	return ctx.JSON(http.StatusCreated, fromDomain(saved))
}

// UpdateDelivery handles PUT /api/deliveries. The body replaces the stored delivery entirely.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	var body servers.UpdateDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	s.logger.DebugContext(ctx.Request().Context(), "REST request to update Delivery", "delivery", body)

	if !hasID(body.Id) {
		return errs.NewBadRequestAlertError("Invalid id", s.config.EntityName, "idnull")
	}

	attrs, err := toAttributes(body)
	if err != nil {
		return err
	}
	d, err := delivery.RestoreDelivery(*body.Id, attrs)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateDeliveryCommand(d)
	if err != nil {
		return err
	}

	saved, err := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	headers.Copy(ctx.Response().Header(), s.alert.EntityUpdate(s.config.EntityName, *body.Id))
	return ctx.JSON(http.StatusOK, fromDomain(saved))
}

// GetAllDeliveries handles GET /api/deliveries with page, size and sort parameters.
func (s *Server) GetAllDeliveries(ctx echo.Context, params servers.GetAllDeliveriesParams) error {
	s.logger.DebugContext(ctx.Request().Context(), "REST request to get a page of Deliveries")

	req, err := s.pageRequest(params)
	if err != nil {
		return err
	}
	query, err := queries.NewListDeliveriesQuery(req)
	if err != nil {
		return err
	}

	page, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	headers.Copy(ctx.Response().Header(), pagination.GenerateHeaders(requestURL(ctx), page))
	return ctx.JSON(http.StatusOK, pagination.Map(page, fromDomain).Content)
}

// GetDelivery handles GET /api/deliveries/{id}. A missing delivery yields 404 with no body.
func (s *Server) GetDelivery(ctx echo.Context, id string) error {
	s.logger.DebugContext(ctx.Request().Context(), "REST request to get Delivery", "id", id)

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}

	d, found, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if !found {
		return ctx.NoContent(http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, fromDomain(d))
}

// DeleteDelivery handles DELETE /api/deliveries/{id}. Deleting an unknown id still answers 204.
func (s *Server) DeleteDelivery(ctx echo.Context, id string) error {
	s.logger.DebugContext(ctx.Request().Context(), "REST request to delete Delivery", "id", id)

	cmd, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return err
	}

	if err := s.deleteDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	headers.Copy(ctx.Response().Header(), s.alert.EntityDeletion(s.config.EntityName, id))
	return ctx.NoContent(http.StatusNoContent)
}

// pageRequest clamps out-of-range paging instead of rejecting it. A page whose offset
// no longer fits in an int is still an error.
func (s *Server) pageRequest(params servers.GetAllDeliveriesParams) (pagination.PageRequest, error) {
	page := pagination.DefaultPage
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}
	size := s.config.DefaultPageSize
	if params.Size != nil && *params.Size > 0 {
		size = *params.Size
	}
	size = min(size, s.config.MaxPageSize)

	var sort []pagination.Order
	if params.Sort != nil {
		var err error
		if sort, err = pagination.ParseSort(*params.Sort); err != nil {
			return pagination.PageRequest{}, err
		}
	}

	return pagination.NewPageRequest(page, size, s.config.MaxPageSize, sort)
}

// hasID treats a missing, null or blank id as absent on update.
func hasID(id *string) bool {
	return id != nil && strings.TrimSpace(*id) != ""
}

// requestURL rebuilds the absolute URL of the current request for Link headers.
func requestURL(ctx echo.Context) *url.URL {
	u := *ctx.Request().URL
	u.Scheme = ctx.Scheme()
	u.Host = ctx.Request().Host
	return &u
}
