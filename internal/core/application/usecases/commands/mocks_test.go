package commands_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) CompareAndSetStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.DriverAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.DriverAssignment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*assignment.DriverAssignment)
	return a, args.Error(1)
}

func (m *MockAssignmentRepository) GetActive(
	ctx context.Context, orderID kernel.UUID, kind assignment.Kind,
) (*assignment.DriverAssignment, error) {
	args := m.Called(ctx, orderID, kind)
	a, _ := args.Get(0).(*assignment.DriverAssignment)
	return a, args.Error(1)
}

func (m *MockAssignmentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.DriverAssignment, error) {
	args := m.Called(ctx, orderID)
	list, _ := args.Get(0).([]*assignment.DriverAssignment)
	return list, args.Error(1)
}

func (m *MockAssignmentRepository) CompareAndSetStatus(
	ctx context.Context, a *assignment.DriverAssignment, expected assignment.Status,
) error {
	args := m.Called(ctx, a, expected)
	return args.Error(0)
}

func (m *MockAssignmentRepository) AddPhoto(ctx context.Context, p *assignment.Photo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*outbox.Message)
	return list, args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

// mockedUoW wires a MockUoW to fresh repository mocks. Repository getters may
// be called any number of times.
type mockedUoW struct {
	uow         *MockUoW
	factory     *MockUoWFactory
	orders      *MockOrderRepository
	assignments *MockAssignmentRepository
	history     *MockHistoryRepository
	outbox      *MockOutboxRepository
}

func newMockedUoW() *mockedUoW {
	m := &mockedUoW{
		uow:         new(MockUoW),
		factory:     new(MockUoWFactory),
		orders:      new(MockOrderRepository),
		assignments: new(MockAssignmentRepository),
		history:     new(MockHistoryRepository),
		outbox:      new(MockOutboxRepository),
	}

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("AssignmentRepository").Return(m.assignments).Maybe()
	m.uow.On("StatusHistoryRepository").Return(m.history).Maybe()
	m.uow.On("OutboxRepository").Return(m.outbox).Maybe()
	return m
}

func (m *mockedUoW) assertExpectations(t mock.TestingT) {
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.history.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
}
