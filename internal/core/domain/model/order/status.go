package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Happy path, with the step number used by the transition validator:
//
//	ORDER_PLACED(1) -> CONFIRMED(2) -> PICKUP_ASSIGNED(3) -> PICKUP_IN_PROGRESS(4)
//	-> PICKUP_COMPLETED(5) -> DROPPED_OFF(6) -> RECEIVED_AT_FACILITY(7)
//	-> PROCESSING_STARTED(8) -> PROCESSING_COMPLETED(9) -> QUALITY_CHECK(10)
//	-> READY_FOR_DELIVERY(11) -> DELIVERY_ASSIGNED(12) -> DELIVERY_IN_PROGRESS(13)
//	-> DELIVERED(14)
//
// Off-path statuses have step 0: PICKUP_FAILED and DELIVERY_FAILED (failure
// branches that loop back to re-dispatch), CANCELLED and REFUNDED.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	Placed
	Confirmed
	PickupAssigned
	PickupInProgress
	PickupCompleted
	PickupFailed
	DroppedOff
	ReceivedAtFacility
	ProcessingStarted
	ProcessingCompleted
	QualityCheck
	ReadyForDelivery
	DeliveryAssigned
	DeliveryInProgress
	Delivered
	DeliveryFailed
	Cancelled
	Refunded
)

type statusInfo struct {
	name     string
	step     int
	terminal bool
	failure  bool
}

var registry = map[Status]statusInfo{
	Placed:              {name: "ORDER_PLACED", step: 1},
	Confirmed:           {name: "CONFIRMED", step: 2},
	PickupAssigned:      {name: "PICKUP_ASSIGNED", step: 3},
	PickupInProgress:    {name: "PICKUP_IN_PROGRESS", step: 4},
	PickupCompleted:     {name: "PICKUP_COMPLETED", step: 5},
	PickupFailed:        {name: "PICKUP_FAILED", failure: true},
	DroppedOff:          {name: "DROPPED_OFF", step: 6},
	ReceivedAtFacility:  {name: "RECEIVED_AT_FACILITY", step: 7},
	ProcessingStarted:   {name: "PROCESSING_STARTED", step: 8},
	ProcessingCompleted: {name: "PROCESSING_COMPLETED", step: 9},
	QualityCheck:        {name: "QUALITY_CHECK", step: 10},
	ReadyForDelivery:    {name: "READY_FOR_DELIVERY", step: 11},
	DeliveryAssigned:    {name: "DELIVERY_ASSIGNED", step: 12},
	DeliveryInProgress:  {name: "DELIVERY_IN_PROGRESS", step: 13},
	Delivered:           {name: "DELIVERED", step: 14, terminal: true},
	DeliveryFailed:      {name: "DELIVERY_FAILED", failure: true},
	Cancelled:           {name: "CANCELLED", terminal: true},
	Refunded:            {name: "REFUNDED", terminal: true},
}

// LastStep is the step number of DELIVERED.
const LastStep = 14

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	out := make([]Status, 0, len(registry))
	for s := Placed; s <= Refunded; s++ {
		out = append(out, s)
	}
	return out
}

// ParseStatus maps the wire name (e.g. "READY_FOR_DELIVERY") to a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, info := range registry {
		if info.name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// StatusAtStep returns the happy-path status holding step, or Unknown.
func StatusAtStep(step int) Status {
	for status, info := range registry {
		if info.step == step && step > 0 {
			return status
		}
	}
	return Unknown
}

func (s Status) Validate() error {
	if _, ok := registry[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if info, ok := registry[s]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Step is the 1-based position on the happy path, 0 for off-path statuses.
func (s Status) Step() int {
	return registry[s].step
}

// IsOnHappyPath reports whether the status has a step number.
func (s Status) IsOnHappyPath() bool {
	return s.Step() > 0
}

// IsTerminal is true for DELIVERED, CANCELLED and REFUNDED.
func (s Status) IsTerminal() bool {
	return registry[s].terminal
}

// IsFailure is true for PICKUP_FAILED and DELIVERY_FAILED.
func (s Status) IsFailure() bool {
	return registry[s].failure
}

// HasReached reports whether an order in s has passed milestone on the happy path.
// Off-path statuses have reached nothing.
func (s Status) HasReached(milestone Status) bool {
	return s.IsOnHappyPath() && milestone.IsOnHappyPath() && s.Step() >= milestone.Step()
}
