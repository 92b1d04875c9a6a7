package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxUoW struct{ mock.Mock }

func (m *MockOutboxUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notificationMessage(t *testing.T) *outbox.Message {
	t.Helper()

	o := orderAt(t, order.Confirmed, false, false)
	n, err := notification.ForOrder(o, notification.OrderConfirmed)
	require.NoError(t, err)
	msg, err := outbox.NewNotificationMessage(o.ID(), n, fixtureTime)
	require.NoError(t, err)
	return msg
}

func statusEventMessage(t *testing.T) *outbox.Message {
	t.Helper()

	o := orderAt(t, order.Confirmed, false, false)
	change, err := order.NewStatusChange(o.ID(), order.Placed, order.Confirmed, newActor(t, actor.Admin), "", fixtureTime)
	require.NoError(t, err)
	msg, err := outbox.NewStatusChangedMessage(o, change, fixtureTime)
	require.NoError(t, err)
	return msg
}

type outboxFixture struct {
	uow       *MockOutboxUoW
	factory   *MockOutboxUoWFactory
	repo      *MockOutboxRepository
	sender    *MockNotificationSender
	publisher *MockEventPublisher
	handler   commands.DeliverOutboxCommandHandler
}

func newOutboxFixture() *outboxFixture {
	f := &outboxFixture{
		uow:       new(MockOutboxUoW),
		factory:   new(MockOutboxUoWFactory),
		repo:      new(MockOutboxRepository),
		sender:    new(MockNotificationSender),
		publisher: new(MockEventPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OutboxRepository").Return(f.repo).Maybe()
	f.handler = commands.NewDeliverOutboxCommandHandler(f.factory, f.sender, f.publisher, discardLogger())
	return f
}

func TestDeliverOutboxCommandHandler_Handle_DeliversBothKinds(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOutboxCommand(10, 3)
	require.NoError(t, err)

	toCustomer := notificationMessage(t)
	event := statusEventMessage(t)

	f := newOutboxFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.repo.On("GetPending", ctx, 10).Return([]*outbox.Message{toCustomer, event}, nil).Once(),
		f.sender.On("Send", ctx, mock.AnythingOfType("notification.Notification")).Return(nil).Once(),
		f.repo.On("Update", ctx, toCustomer).Return(nil).Once(),
		f.publisher.On("Publish", ctx, event.AggregateID().String(), event.Payload()).Return(nil).Once(),
		f.repo.On("Update", ctx, event).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	require.NoError(t, f.handler.Handle(ctx, cmd))

	f.uow.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.sender.AssertExpectations(t)
	f.publisher.AssertExpectations(t)

	assert.Equal(t, outbox.StateSent, toCustomer.State())
	assert.Equal(t, outbox.StateSent, event.State())
	assert.Equal(t, 1, event.Attempts())
	require.NotNil(t, event.ProcessedAt())

	sent := f.sender.Calls[0].Arguments.Get(1).(notification.Notification)
	assert.Equal(t, notification.OrderConfirmed, sent.Template)
}

func TestDeliverOutboxCommandHandler_Handle_FailedAttemptsAreCounted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOutboxCommand(10, 2)
	require.NoError(t, err)

	msg := notificationMessage(t)
	sendErr := errors.New("ses: throttled")

	for attempt, want := range []outbox.State{outbox.StatePending, outbox.StateFailed} {
		f := newOutboxFixture()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.repo.On("GetPending", ctx, 10).Return([]*outbox.Message{msg}, nil).Once()
		f.sender.On("Send", ctx, mock.Anything).Return(sendErr).Once()
		f.repo.On("Update", ctx, msg).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		require.NoError(t, f.handler.Handle(ctx, cmd), "delivery failures are not run failures")
		f.repo.AssertExpectations(t)

		assert.Equal(t, want, msg.State())
		assert.Equal(t, attempt+1, msg.Attempts())
		assert.Equal(t, "ses: throttled", msg.LastError())
	}
}

func TestDeliverOutboxCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOutboxCommand(25, 5)
	require.NoError(t, err)

	f := newOutboxFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.repo.On("GetPending", ctx, 25).Return([]*outbox.Message{}, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.uow.AssertNotCalled(t, "Commit", ctx)
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDeliverOutboxCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOutboxCommand(10, 5)
	require.NoError(t, err)

	event := statusEventMessage(t)

	f := newOutboxFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.repo.On("GetPending", ctx, 10).Return([]*outbox.Message{event}, nil).Once()
	f.publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	f.repo.On("Update", ctx, event).Return(errors.New("connection reset")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	err = f.handler.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeliverOutboxCommandHandler_Handle_UnknownPayload(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOutboxCommand(10, 1)
	require.NoError(t, err)

	broken, err := outbox.NewMessage(kernel.NewUUID(), outbox.KindCustomerNotification, kernel.NewUUID(), []byte(`{"data":42}`), fixtureTime)
	require.NoError(t, err)

	f := newOutboxFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.repo.On("GetPending", ctx, 10).Return([]*outbox.Message{broken}, nil).Once()
	f.repo.On("Update", ctx, broken).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cmd))
	assert.Equal(t, outbox.StateFailed, broken.State())
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
