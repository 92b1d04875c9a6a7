package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	from, to order.Status
}

func expectedEdges() map[edge]bool {
	edges := map[edge]bool{
		{order.Placed, order.Confirmed}:                      true,
		{order.Confirmed, order.PickupAssigned}:              true,
		{order.PickupAssigned, order.PickupInProgress}:       true,
		{order.PickupInProgress, order.PickupCompleted}:      true,
		{order.PickupCompleted, order.DroppedOff}:            true,
		{order.DroppedOff, order.ReceivedAtFacility}:         true,
		{order.ReceivedAtFacility, order.ProcessingStarted}:  true,
		{order.ProcessingStarted, order.ProcessingCompleted}: true,
		{order.ProcessingCompleted, order.QualityCheck}:      true,
		{order.QualityCheck, order.ReadyForDelivery}:         true,
		{order.ReadyForDelivery, order.DeliveryAssigned}:     true,
		{order.DeliveryAssigned, order.DeliveryInProgress}:   true,
		{order.DeliveryInProgress, order.Delivered}:          true,

		{order.PickupAssigned, order.PickupFailed}:       true,
		{order.PickupInProgress, order.PickupFailed}:     true,
		{order.DeliveryAssigned, order.DeliveryFailed}:   true,
		{order.DeliveryInProgress, order.DeliveryFailed}: true,

		{order.PickupFailed, order.PickupAssigned}:     true,
		{order.DeliveryFailed, order.DeliveryAssigned}: true,

		{order.Delivered, order.Refunded}: true,
		{order.Cancelled, order.Refunded}: true,
	}

	for _, from := range order.AllStatuses() {
		if !from.IsTerminal() {
			edges[edge{from, order.Cancelled}] = true
			edges[edge{from, order.Refunded}] = true
		}
	}
	return edges
}

func expectedRoles(to order.Status) []actor.Role {
	switch to {
	case order.Confirmed, order.PickupAssigned, order.DeliveryAssigned, order.Cancelled, order.Refunded:
		return []actor.Role{actor.Admin, actor.OperationManager}
	case order.PickupInProgress, order.PickupCompleted, order.PickupFailed, order.DroppedOff,
		order.DeliveryInProgress, order.Delivered, order.DeliveryFailed:
		return []actor.Role{actor.Driver}
	case order.ReceivedAtFacility, order.ProcessingStarted, order.ProcessingCompleted,
		order.QualityCheck, order.ReadyForDelivery:
		return []actor.Role{actor.FacilityTeam, actor.Admin}
	default:
		return nil
	}
}

func TestTransitionValidator_AllPairs(t *testing.T) {
	validator := services.NewTransitionValidator()
	edges := expectedEdges()

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			for _, role := range allRoles {
				requester := newActor(t, role)
				ownID := requester.ID()

				err := validator.Validate(services.TransitionRequest{
					Current:          from,
					Requested:        to,
					Actor:            requester,
					AssignedDriverID: &ownID,
				})

				name := from.String() + "->" + to.String() + " by " + role.String()
				switch {
				case from.IsTerminal() && !edges[edge{from, to}]:
					require.ErrorIs(t, err, errs.ErrOrderAlreadyTerminal, name)
				case !edges[edge{from, to}]:
					require.ErrorIs(t, err, errs.ErrInvalidStepOrder, name)
				case requester.HasRole(expectedRoles(to)...):
					require.NoError(t, err, name)
				default:
					require.ErrorIs(t, err, errs.ErrActorNotPermitted, name)
				}
			}
		}
	}
}

func TestTransitionValidator_IsAdjacent(t *testing.T) {
	validator := services.NewTransitionValidator()
	edges := expectedEdges()

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			assert.Equal(t, edges[edge{from, to}], validator.IsAdjacent(from, to), from.String()+"->"+to.String())
		}
	}

	assert.Equal(t,
		[]order.Status{order.PickupInProgress, order.PickupFailed, order.Cancelled, order.Refunded},
		validator.AllowedTargets(order.PickupAssigned))
	assert.Equal(t, []order.Status{order.Refunded}, validator.AllowedTargets(order.Delivered))
	assert.Empty(t, validator.AllowedTargets(order.Refunded))
}

func TestTransitionValidator_DriverOwnership(t *testing.T) {
	validator := services.NewTransitionValidator()
	driver := newActor(t, actor.Driver)

	t.Run("should reject driver without assignment", func(t *testing.T) {
		err := validator.Validate(services.TransitionRequest{
			Current:   order.PickupAssigned,
			Requested: order.PickupInProgress,
			Actor:     driver,
		})

		require.ErrorIs(t, err, errs.ErrActorNotPermitted)
		assert.Contains(t, err.Error(), "not the assigned driver")
	})

	t.Run("should reject another driver's order", func(t *testing.T) {
		other := kernel.NewUUID()

		err := validator.Validate(services.TransitionRequest{
			Current:          order.DeliveryInProgress,
			Requested:        order.Delivered,
			Actor:            driver,
			AssignedDriverID: &other,
		})

		require.ErrorIs(t, err, errs.ErrActorNotPermitted)
	})
}

func TestTransitionValidator_RejectsMalformedInput(t *testing.T) {
	validator := services.NewTransitionValidator()

	err := validator.Validate(services.TransitionRequest{
		Current:   order.Unknown,
		Requested: order.Status(99),
		Actor:     actor.Actor{},
	})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrInvalidStepOrder)
}

func TestTransitionValidator_PostDeliveryPolicy(t *testing.T) {
	validator := services.NewTransitionValidator()
	admin := newActor(t, actor.Admin)

	err := validator.Validate(services.TransitionRequest{Current: order.Delivered, Requested: order.Cancelled, Actor: admin})
	require.ErrorIs(t, err, errs.ErrOrderAlreadyTerminal)

	err = validator.Validate(services.TransitionRequest{Current: order.Delivered, Requested: order.Refunded, Actor: admin})
	require.NoError(t, err)

	err = validator.Validate(services.TransitionRequest{Current: order.Refunded, Requested: order.Refunded, Actor: admin})
	require.ErrorIs(t, err, errs.ErrOrderAlreadyTerminal)
}

func TestTransitionValidator_SameStatus(t *testing.T) {
	validator := services.NewTransitionValidator()

	err := validator.Validate(services.TransitionRequest{
		Current:   order.QualityCheck,
		Requested: order.QualityCheck,
		Actor:     newActor(t, actor.FacilityTeam),
	})

	require.ErrorIs(t, err, errs.ErrInvalidStepOrder)
}
