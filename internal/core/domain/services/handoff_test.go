package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestHandoffFor(t *testing.T) {
	driverStatuses := map[order.Status]services.Handoff{
		order.PickupInProgress:   {Kind: assignment.Pickup, Status: assignment.InProgress},
		order.PickupCompleted:    {Kind: assignment.Pickup, Status: assignment.Completed},
		order.DroppedOff:         {Kind: assignment.Pickup, Status: assignment.DroppedOff},
		order.PickupFailed:       {Kind: assignment.Pickup, Status: assignment.Failed},
		order.DeliveryInProgress: {Kind: assignment.Delivery, Status: assignment.InProgress},
		order.Delivered:          {Kind: assignment.Delivery, Status: assignment.Completed},
		order.DeliveryFailed:     {Kind: assignment.Delivery, Status: assignment.Failed},
	}

	for _, status := range order.AllStatuses() {
		h, ok := services.HandoffFor(status)
		expected, isDriver := driverStatuses[status]

		assert.Equal(t, isDriver, ok, status.String())
		assert.Equal(t, expected, h, status.String())
	}
}

func TestDispatchKindFor(t *testing.T) {
	kind, ok := services.DispatchKindFor(order.PickupAssigned)
	assert.True(t, ok)
	assert.Equal(t, assignment.Pickup, kind)

	kind, ok = services.DispatchKindFor(order.DeliveryAssigned)
	assert.True(t, ok)
	assert.Equal(t, assignment.Delivery, kind)

	_, ok = services.DispatchKindFor(order.Confirmed)
	assert.False(t, ok)
}
