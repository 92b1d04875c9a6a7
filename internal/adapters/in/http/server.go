package http

import (
	"context"
	"log/slog"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
}

type DispatchDriverHandler interface {
	Handle(ctx context.Context, cmd commands.DispatchDriverCommand) (kernel.UUID, error)
}

type GenerateInvoiceHandler interface {
	Handle(ctx context.Context, cmd commands.GenerateInvoiceCommand) error
}

type ResendNotificationHandler interface {
	Handle(ctx context.Context, cmd commands.ResendNotificationCommand) error
}

type ActiveOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderSummary, error)
}

type OrderDetailsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error)
}

type OrderHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.StatusChangeView, error)
}

type DriverAssignmentsHandler interface {
	Handle(ctx context.Context, query queries.GetDriverAssignmentsQuery) ([]queries.DriverTask, error)
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	PlaceOrder         PlaceOrderHandler
	ChangeOrderStatus  ChangeOrderStatusHandler
	DispatchDriver     DispatchDriverHandler
	GenerateInvoice    GenerateInvoiceHandler
	ResendNotification ResendNotificationHandler
	ActiveOrders       ActiveOrdersHandler
	OrderDetails       OrderDetailsHandler
	OrderHistory       OrderHistoryHandler
	DriverAssignments  DriverAssignmentsHandler
}

// Server implements servers.ServerInterface by translating requests into
// commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the health probe, the API documentation and the
// authenticated API on e. Requests under the API base path are checked
// against the OpenAPI document before they reach a handler.
func (s *Server) Register(e *echo.Echo, jwtSecret []byte) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = s.handleHTTPError
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(servers.BasePath, JWTMiddleware(jwtSecret), OpenAPIValidator(doc, servers.BasePath))
	servers.RegisterHandlers(api, s)
	return nil
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// bind decodes and validates the request body into req.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(req)
}

// toOrderID converts the path parameter decoded by the generated wrapper.
func toOrderID(id servers.OrderId) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
