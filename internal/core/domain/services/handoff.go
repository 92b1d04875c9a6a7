package services

import (
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/order"
)

// Handoff is the assignment transition mirrored by a driver order status.
type Handoff struct {
	Kind   assignment.Kind
	Status assignment.Status
}

var handoffs = map[order.Status]Handoff{
	order.PickupInProgress:   {Kind: assignment.Pickup, Status: assignment.InProgress},
	order.PickupCompleted:    {Kind: assignment.Pickup, Status: assignment.Completed},
	order.DroppedOff:         {Kind: assignment.Pickup, Status: assignment.DroppedOff},
	order.PickupFailed:       {Kind: assignment.Pickup, Status: assignment.Failed},
	order.DeliveryInProgress: {Kind: assignment.Delivery, Status: assignment.InProgress},
	order.Delivered:          {Kind: assignment.Delivery, Status: assignment.Completed},
	order.DeliveryFailed:     {Kind: assignment.Delivery, Status: assignment.Failed},
}

// HandoffFor returns the assignment transition a driver performs when
// requesting status. The second result is false for non-driver statuses.
func HandoffFor(status order.Status) (Handoff, bool) {
	h, ok := handoffs[status]
	return h, ok
}

// DispatchKindFor returns the assignment kind created when an order enters
// PICKUP_ASSIGNED or DELIVERY_ASSIGNED.
func DispatchKindFor(status order.Status) (assignment.Kind, bool) {
	switch status {
	case order.PickupAssigned:
		return assignment.Pickup, true
	case order.DeliveryAssigned:
		return assignment.Delivery, true
	default:
		return assignment.UnknownKind, false
	}
}

// PhotoType returns the evidence type required for the handoff, if any.
func (h Handoff) PhotoType() (assignment.PhotoType, bool) {
	return assignment.PhotoTypeFor(h.Kind, h.Status)
}
