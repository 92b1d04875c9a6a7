package services

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

const reasonNotAssignedDriver = "not the assigned driver"

// TransitionRequest is everything needed to judge one requested status change.
type TransitionRequest struct {
	// Current is the status the caller observed.
	Current order.Status
	// Requested is the status the actor asks for.
	Requested order.Status
	// Actor is the authenticated requester.
	Actor actor.Actor
	// AssignedDriverID is the driver of the active assignment the requested
	// status belongs to. Nil when there is no such assignment.
	AssignedDriverID *kernel.UUID
}

var (
	dispatchRoles = []actor.Role{actor.Admin, actor.OperationManager}
	driverRoles   = []actor.Role{actor.Driver}
	facilityRoles = []actor.Role{actor.FacilityTeam, actor.Admin}
)

var requiredRoles = map[order.Status][]actor.Role{
	order.Confirmed:           dispatchRoles,
	order.PickupAssigned:      dispatchRoles,
	order.PickupInProgress:    driverRoles,
	order.PickupCompleted:     driverRoles,
	order.PickupFailed:        driverRoles,
	order.DroppedOff:          driverRoles,
	order.ReceivedAtFacility:  facilityRoles,
	order.ProcessingStarted:   facilityRoles,
	order.ProcessingCompleted: facilityRoles,
	order.QualityCheck:        facilityRoles,
	order.ReadyForDelivery:    facilityRoles,
	order.DeliveryAssigned:    dispatchRoles,
	order.DeliveryInProgress:  driverRoles,
	order.Delivered:           driverRoles,
	order.DeliveryFailed:      driverRoles,
	order.Cancelled:           dispatchRoles,
	order.Refunded:            dispatchRoles,
}

// failureEdges lists the statuses a failure branch may be entered from.
var failureEdges = map[order.Status][]order.Status{
	order.PickupFailed:   {order.PickupAssigned, order.PickupInProgress},
	order.DeliveryFailed: {order.DeliveryAssigned, order.DeliveryInProgress},
}

// redispatchEdges maps a failure status to the assignment step it re-enters.
var redispatchEdges = map[order.Status]order.Status{
	order.PickupFailed:   order.PickupAssigned,
	order.DeliveryFailed: order.DeliveryAssigned,
}

// postTerminalEdges are the only moves out of a terminal status.
var postTerminalEdges = map[order.Status]order.Status{
	order.Delivered: order.Refunded,
	order.Cancelled: order.Refunded,
}

// TransitionValidator decides whether an actor may move an order from one
// status to another.
//
// Key responsibilities:
//   - Enforcing the adjacency table built from the happy-path steps
//   - Allowing failure branches, re-dispatch after failure and cancellation
//   - Gating each target status by role and, for drivers, by assignment
//
// Business rules:
//   - A move is legal when the target's step is the current step + 1
//   - PICKUP_FAILED is reachable from PICKUP_ASSIGNED and PICKUP_IN_PROGRESS,
//     DELIVERY_FAILED from DELIVERY_ASSIGNED and DELIVERY_IN_PROGRESS
//   - A failed status may re-enter its assignment step (re-dispatch)
//   - CANCELLED and REFUNDED are reachable from every non-terminal status
//   - Terminal orders accept only DELIVERED -> REFUNDED and CANCELLED -> REFUNDED
//   - Requesting the current status again is an invalid step order
//
// Example usage:
//
//	validator := NewTransitionValidator()
//	err := validator.Validate(TransitionRequest{
//	    Current:   order.Placed,
//	    Requested: order.Confirmed,
//	    Actor:     admin,
//	})
//	if errors.Is(err, errs.ErrActorNotPermitted) {
//	    // surface as an authorization failure
//	}
type TransitionValidator struct{}

func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// Validate judges a transition request.
//
// Checks run in a fixed order so each rejection has a single reason:
//  1. malformed input (unknown statuses, unconstructed actor): a value error
//  2. terminal current status outside the post-terminal exceptions: ErrOrderAlreadyTerminal
//  3. target not adjacent to the current status: ErrInvalidStepOrder
//  4. actor role or assignment ownership: ErrActorNotPermitted
//
// Returns:
//   - error: nil when the transition is legal, otherwise one typed error from errs
func (v TransitionValidator) Validate(req TransitionRequest) error {
	if err := errors.Join(req.Current.Validate(), req.Requested.Validate(), req.Actor.Validate()); err != nil {
		return err
	}

	if req.Current.IsTerminal() && postTerminalEdges[req.Current] != req.Requested {
		return errs.NewOrderAlreadyTerminalError("order", req.Current, req.Requested)
	}

	if !v.IsAdjacent(req.Current, req.Requested) {
		return errs.NewInvalidStepOrderError(req.Current, req.Requested)
	}

	return v.authorize(req)
}

// IsAdjacent reports whether the adjacency table contains from -> to,
// regardless of who asks.
func (v TransitionValidator) IsAdjacent(from, to order.Status) bool {
	if from == to || from.Validate() != nil || to.Validate() != nil {
		return false
	}

	if from.IsTerminal() {
		return postTerminalEdges[from] == to
	}

	switch {
	case to == order.Cancelled || to == order.Refunded:
		return true
	case to.IsFailure():
		for _, src := range failureEdges[to] {
			if src == from {
				return true
			}
		}
		return false
	case from.IsFailure():
		return redispatchEdges[from] == to
	default:
		return from.IsOnHappyPath() && to.Step() == from.Step()+1
	}
}

// AllowedTargets lists every status adjacent to from, in registry order.
func (v TransitionValidator) AllowedTargets(from order.Status) []order.Status {
	var out []order.Status
	for _, to := range order.AllStatuses() {
		if v.IsAdjacent(from, to) {
			out = append(out, to)
		}
	}
	return out
}

// RequiredRoles returns the roles allowed to request status.
func (v TransitionValidator) RequiredRoles(status order.Status) []actor.Role {
	return requiredRoles[status]
}

func (v TransitionValidator) authorize(req TransitionRequest) error {
	roles := requiredRoles[req.Requested]
	if !req.Actor.HasRole(roles...) {
		return errs.NewActorNotPermittedError(req.Actor.Role(), req.Requested, "")
	}

	if _, driverStep := HandoffFor(req.Requested); driverStep {
		if req.AssignedDriverID == nil || !req.AssignedDriverID.IsEqual(req.Actor.ID()) {
			return errs.NewActorNotPermittedError(req.Actor.Role(), req.Requested, reasonNotAssignedDriver)
		}
	}

	return nil
}
