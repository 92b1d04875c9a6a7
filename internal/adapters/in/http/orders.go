package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	by, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = bind(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}

	details, err := orderDetailsFrom(body, by)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, by, details)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders?status=.
func (s *Server) GetActiveOrders(ctx echo.Context, params servers.GetActiveOrdersParams) error {
	viewer, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var status *order.Status
	if raw := deref(params.Status); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return writeError(ctx, s.logger, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetActiveOrdersQuery(viewer, status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	summaries, err := s.handlers.ActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, newOrderSummaries(summaries))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderId) error {
	viewer, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, err := toOrderID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID, viewer)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	details, err := s.handlers.OrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDetails(details))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context, id servers.OrderId) error {
	viewer, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, err := toOrderID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, viewer)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	history, err := s.handlers.OrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, newStatusChanges(history))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id servers.OrderId) error {
	by, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, err := toOrderID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = bind(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}

	target, expected, evidence, err := statusChangeFrom(body)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, by, target, expected, evidence, deref(body.Note))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchDriver handles POST /api/v1/orders/:id/assignments.
func (s *Server) DispatchDriver(ctx echo.Context, id servers.OrderId) error {
	by, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, err := toOrderID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	var body servers.DispatchDriverJSONRequestBody
	if err = bind(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}

	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	kind, err := assignment.ParseKind(string(body.Kind))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewDispatchDriverCommand(orderID, by, driverID, kind, deref(body.Notes))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	assignmentID, err := s.handlers.DispatchDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: assignmentID.Bytes()})
}

// GenerateInvoice handles POST /api/v1/orders/:id/invoice.
func (s *Server) GenerateInvoice(ctx echo.Context, id servers.OrderId) error {
	by, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, err := toOrderID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewGenerateInvoiceCommand(orderID, by)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err = s.handlers.GenerateInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResendNotification handles POST /api/v1/orders/:id/notifications/resend.
func (s *Server) ResendNotification(ctx echo.Context, id servers.OrderId) error {
	by, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, err := toOrderID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewResendNotificationCommand(orderID, by)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	if err = s.handlers.ResendNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}
