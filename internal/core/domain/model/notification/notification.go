package notification

import (
	"errors"
	"maps"
	"net/mail"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Context data keys filled by ForOrder.
const (
	KeyOrderID     = "order_id"
	KeyOrderNumber = "order_number"
	KeyStatus      = "status"
)

// Notification is one customer message waiting to be sent.
type Notification struct {
	CustomerID kernel.UUID       `json:"customer_id"`
	Recipient  string            `json:"recipient"`
	Template   Template          `json:"template"`
	Data       map[string]string `json:"data"`
}

func New(customerID kernel.UUID, recipient string, template Template, data map[string]string) (Notification, error) {
	n := Notification{
		CustomerID: customerID,
		Recipient:  strings.TrimSpace(recipient),
		Template:   template,
		Data:       maps.Clone(data),
	}
	if n.Data == nil {
		n.Data = map[string]string{}
	}

	if err := n.Validate(); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// ForOrder addresses template to the order's customer with the order number
// and current status as context.
func ForOrder(o *order.Order, template Template) (Notification, error) {
	return New(o.CustomerID(), o.CustomerEmail(), template, map[string]string{
		KeyOrderID:     o.ID().String(),
		KeyOrderNumber: o.Number(),
		KeyStatus:      o.Status().String(),
	})
}

func (n Notification) Validate() error {
	var addrErr error
	if n.Recipient == "" {
		addrErr = errs.NewValueIsRequiredError("recipient")
	} else if _, err := mail.ParseAddress(n.Recipient); err != nil {
		addrErr = errs.NewValueIsInvalidErrorWithCause("recipient", err)
	}

	return errors.Join(n.CustomerID.Validate(), addrErr, n.Template.Validate())
}

// Subject is the rendered subject line, suffixed with the order number when known.
func (n Notification) Subject() string {
	if number := n.Data[KeyOrderNumber]; number != "" {
		return n.Template.Subject() + " (" + number + ")"
	}
	return n.Template.Subject()
}
