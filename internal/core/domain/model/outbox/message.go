// Package outbox holds messages written in the same transaction as a status
// change and delivered afterwards, at least once, by a background job.
package outbox

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const lastErrorMaxLength = 1000

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Kind selects the delivery channel of a message.
type Kind string

const (
	KindCustomerNotification Kind = "customer_notification"
	KindOrderStatusChanged   Kind = "order_status_changed"
)

func (k Kind) Validate() error {
	switch k {
	case KindCustomerNotification, KindOrderStatusChanged:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("outbox kind", fmt.Errorf("%q is not a known kind", string(k)))
	}
}

// State is the delivery state of a message.
type State string

const (
	StatePending State = "PENDING"
	StateSent    State = "SENT"
	StateFailed  State = "FAILED"
)

func (s State) Validate() error {
	switch s {
	case StatePending, StateSent, StateFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("outbox state", fmt.Errorf("%q is not a known state", string(s)))
	}
}

// Message is one pending side effect of a committed transition.
type Message struct {
	id          kernel.UUID
	kind        Kind
	aggregateID kernel.UUID
	payload     []byte
	attempts    int
	state       State
	lastError   string
	createdAt   time.Time
	processedAt *time.Time
	guard       guard.ConstructorGuard
}

func NewMessage(id kernel.UUID, kind Kind, aggregateID kernel.UUID, payload []byte, now time.Time) (*Message, error) {
	m := &Message{
		state:     StatePending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setKind(kind),
		m.setAggregateID(aggregateID),
		m.setPayload(payload),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func RestoreMessage(
	id kernel.UUID,
	kind Kind,
	aggregateID kernel.UUID,
	payload []byte,
	attempts int,
	state State,
	lastError string,
	createdAt time.Time,
	processedAt *time.Time,
) (*Message, error) {
	m := &Message{
		attempts:    attempts,
		lastError:   lastError,
		createdAt:   createdAt.UTC(),
		processedAt: processedAt,
		guard:       guard.NewConstructorGuard(),
	}

	var attemptsErr error
	if attempts < 0 {
		attemptsErr = errs.NewValueIsInvalidError("attempts")
	}

	if err := errors.Join(
		m.setID(id),
		m.setKind(kind),
		m.setAggregateID(aggregateID),
		m.setPayload(payload),
		state.Validate(),
		attemptsErr,
	); err != nil {
		return nil, err
	}

	m.state = state
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Kind() Kind {
	return m.kind
}

func (m *Message) AggregateID() kernel.UUID {
	return m.aggregateID
}

func (m *Message) Payload() []byte {
	return m.payload
}

func (m *Message) Attempts() int {
	return m.attempts
}

func (m *Message) State() State {
	return m.state
}

func (m *Message) LastError() string {
	return m.lastError
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) ProcessedAt() *time.Time {
	return m.processedAt
}

// MarkSent records a successful delivery.
func (m *Message) MarkSent(at time.Time) {
	at = at.UTC()
	m.attempts++
	m.state = StateSent
	m.lastError = ""
	m.processedAt = &at
}

// MarkAttemptFailed counts a failed delivery. The message stays PENDING for
// the next run until maxAttempts is reached, then becomes FAILED.
func (m *Message) MarkAttemptFailed(cause error, maxAttempts int, at time.Time) {
	m.attempts++
	if cause != nil {
		m.lastError = truncate(cause.Error(), lastErrorMaxLength)
	}
	if m.attempts >= maxAttempts {
		at = at.UTC()
		m.state = StateFailed
		m.processedAt = &at
	}
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *Message) setAggregateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("aggregate id", err)
	}
	m.aggregateID = id
	return nil
}

func (m *Message) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}
	m.payload = payload
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
