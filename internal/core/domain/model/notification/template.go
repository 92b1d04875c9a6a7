// Package notification describes the customer messages fired by lifecycle
// transitions. Delivery transport is an adapter concern; the domain only
// decides which template is sent, to whom and with which context data.
package notification

import (
	"fmt"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Template is the key of a customer e-mail template.
type Template string

const (
	OrderPlaced         Template = "order_placed"
	OrderConfirmed      Template = "order_confirmed"
	PickupAssigned      Template = "pickup_assigned"
	PickupInProgress    Template = "pickup_in_progress"
	PickupCompleted     Template = "pickup_completed"
	PickupFailed        Template = "pickup_failed"
	DroppedOff          Template = "dropped_off"
	ReceivedAtFacility  Template = "received_at_facility"
	ProcessingStarted   Template = "processing_started"
	ProcessingCompleted Template = "processing_completed"
	QualityCheck        Template = "quality_check"
	ReadyForDelivery    Template = "ready_for_delivery"
	DeliveryAssigned    Template = "delivery_assigned"
	DeliveryInProgress  Template = "delivery_in_progress"
	OrderDelivered      Template = "order_delivered"
	DeliveryFailed      Template = "delivery_failed"
	OrderCancelled      Template = "order_cancelled"
	OrderRefunded       Template = "order_refunded"

	// PaymentCompleted replaces OrderDelivered when the order was invoiced.
	PaymentCompleted Template = "payment_completed"
	// InvoiceGenerated is sent when staff issue the invoice.
	InvoiceGenerated Template = "invoice_generated"
)

type templateInfo struct {
	subject string
}

var templates = map[Template]templateInfo{
	OrderPlaced:         {subject: "We received your laundry order"},
	OrderConfirmed:      {subject: "Your order is confirmed"},
	PickupAssigned:      {subject: "A driver has been assigned to your pickup"},
	PickupInProgress:    {subject: "Your driver is on the way"},
	PickupCompleted:     {subject: "Your laundry has been picked up"},
	PickupFailed:        {subject: "We could not pick up your laundry"},
	DroppedOff:          {subject: "Your laundry arrived at our facility"},
	ReceivedAtFacility:  {subject: "Your laundry was checked in"},
	ProcessingStarted:   {subject: "We started cleaning your laundry"},
	ProcessingCompleted: {subject: "Your laundry is clean"},
	QualityCheck:        {subject: "Your laundry is in quality check"},
	ReadyForDelivery:    {subject: "Your laundry is ready for delivery"},
	DeliveryAssigned:    {subject: "A driver has been assigned to your delivery"},
	DeliveryInProgress:  {subject: "Your laundry is out for delivery"},
	OrderDelivered:      {subject: "Your laundry has been delivered"},
	DeliveryFailed:      {subject: "We could not deliver your laundry"},
	OrderCancelled:      {subject: "Your order was cancelled"},
	OrderRefunded:       {subject: "Your order was refunded"},
	PaymentCompleted:    {subject: "Delivered and paid, thank you"},
	InvoiceGenerated:    {subject: "Your invoice is ready"},
}

var statusTemplates = map[order.Status]Template{
	order.Placed:              OrderPlaced,
	order.Confirmed:           OrderConfirmed,
	order.PickupAssigned:      PickupAssigned,
	order.PickupInProgress:    PickupInProgress,
	order.PickupCompleted:     PickupCompleted,
	order.PickupFailed:        PickupFailed,
	order.DroppedOff:          DroppedOff,
	order.ReceivedAtFacility:  ReceivedAtFacility,
	order.ProcessingStarted:   ProcessingStarted,
	order.ProcessingCompleted: ProcessingCompleted,
	order.QualityCheck:        QualityCheck,
	order.ReadyForDelivery:    ReadyForDelivery,
	order.DeliveryAssigned:    DeliveryAssigned,
	order.DeliveryInProgress:  DeliveryInProgress,
	order.Delivered:           OrderDelivered,
	order.DeliveryFailed:      DeliveryFailed,
	order.Cancelled:           OrderCancelled,
	order.Refunded:            OrderRefunded,
}

// TemplateFor returns the generic template keyed by an order status.
func TemplateFor(status order.Status) (Template, error) {
	t, ok := statusTemplates[status]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("no template for %s", status))
	}
	return t, nil
}

func (t Template) String() string {
	return string(t)
}

func (t Template) Validate() error {
	if _, ok := templates[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("template", fmt.Errorf("%q is not a known template", string(t)))
	}
	return nil
}

// Subject is the e-mail subject line for the template.
func (t Template) Subject() string {
	return templates[t].subject
}
