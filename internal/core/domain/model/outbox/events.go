package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Envelope wraps every published event.
type Envelope struct {
	EventType   Kind            `json:"event_type"`
	EventID     kernel.UUID     `json:"event_id"`
	AggregateID kernel.UUID     `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Data        json.RawMessage `json:"data"`
}

// StatusChangedData is the body of an order_status_changed event.
type StatusChangedData struct {
	OrderID     kernel.UUID `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	CustomerID  kernel.UUID `json:"customer_id"`
	OldStatus   string      `json:"old_status,omitempty"`
	NewStatus   string      `json:"new_status"`
	ActorID     kernel.UUID `json:"actor_id"`
	ActorRole   string      `json:"actor_role"`
	Payment     string      `json:"payment_status"`
}

// NewStatusChangedMessage builds the event published for a recorded change.
func NewStatusChangedMessage(o *order.Order, change order.StatusChange, now time.Time) (*Message, error) {
	data := StatusChangedData{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		CustomerID:  o.CustomerID(),
		NewStatus:   change.To.String(),
		ActorID:     change.ActorID,
		ActorRole:   change.ActorRole.String(),
		Payment:     o.PaymentStatus().String(),
	}
	if change.From != order.Unknown {
		data.OldStatus = change.From.String()
	}

	return newEnvelopedMessage(KindOrderStatusChanged, o.ID(), change.OccurredAt, data, now)
}

// NewNotificationMessage queues a customer notification about an order.
func NewNotificationMessage(orderID kernel.UUID, n notification.Notification, now time.Time) (*Message, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return newEnvelopedMessage(KindCustomerNotification, orderID, now, n, now)
}

// DecodeEnvelope reads the envelope of a stored message.
func DecodeEnvelope(m *Message) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(m.Payload(), &env); err != nil {
		return Envelope{}, errs.NewValueIsInvalidErrorWithCause("outbox payload", err)
	}
	if env.EventType != m.Kind() {
		return Envelope{}, errs.NewValueIsInvalidErrorWithCause(
			"outbox payload", fmt.Errorf("envelope type %s does not match message kind %s", env.EventType, m.Kind()))
	}
	return env, nil
}

// DecodeNotification extracts the notification carried by a customer_notification message.
func DecodeNotification(m *Message) (notification.Notification, error) {
	env, err := DecodeEnvelope(m)
	if err != nil {
		return notification.Notification{}, err
	}
	if env.EventType != KindCustomerNotification {
		return notification.Notification{}, errs.NewValueIsInvalidErrorWithCause(
			"outbox payload", fmt.Errorf("%s does not carry a notification", env.EventType))
	}

	var n notification.Notification
	if err = json.Unmarshal(env.Data, &n); err != nil {
		return notification.Notification{}, errs.NewValueIsInvalidErrorWithCause("outbox payload", err)
	}
	return n, n.Validate()
}

func newEnvelopedMessage(kind Kind, aggregateID kernel.UUID, occurredAt time.Time, data any, now time.Time) (*Message, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("outbox payload", err)
	}

	payload, err := json.Marshal(Envelope{
		EventType:   kind,
		EventID:     kernel.NewUUID(),
		AggregateID: aggregateID,
		OccurredAt:  occurredAt.UTC(),
		Data:        body,
	})
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("outbox payload", err)
	}

	return NewMessage(kernel.NewUUID(), kind, aggregateID, payload, now)
}
