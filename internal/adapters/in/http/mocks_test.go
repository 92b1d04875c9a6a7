package http_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDispatchDriverHandler struct{ mock.Mock }

func (m *MockDispatchDriverHandler) Handle(ctx context.Context, cmd commands.DispatchDriverCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Error(1)
}

type MockGenerateInvoiceHandler struct{ mock.Mock }

func (m *MockGenerateInvoiceHandler) Handle(ctx context.Context, cmd commands.GenerateInvoiceCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockResendNotificationHandler struct{ mock.Mock }

func (m *MockResendNotificationHandler) Handle(ctx context.Context, cmd commands.ResendNotificationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockActiveOrdersHandler struct{ mock.Mock }

func (m *MockActiveOrdersHandler) Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).([]queries.OrderSummary)
	return out, args.Error(1)
}

type MockOrderDetailsHandler struct{ mock.Mock }

func (m *MockOrderDetailsHandler) Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).(queries.OrderDetails)
	return out, args.Error(1)
}

type MockOrderHistoryHandler struct{ mock.Mock }

func (m *MockOrderHistoryHandler) Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.StatusChangeView, error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).([]queries.StatusChangeView)
	return out, args.Error(1)
}

type MockDriverAssignmentsHandler struct{ mock.Mock }

func (m *MockDriverAssignmentsHandler) Handle(ctx context.Context, query queries.GetDriverAssignmentsQuery) ([]queries.DriverTask, error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).([]queries.DriverTask)
	return out, args.Error(1)
}
