package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func detailsFor(t *testing.T, customerID kernel.UUID) order.Details {
	t.Helper()

	pickupAddr, err := kernel.NewAddress("4 Starch Ln", "Riverton", "84065")
	require.NoError(t, err)
	deliveryAddr, err := kernel.NewAddress("18 Press Ct", "Riverton", "84065")
	require.NoError(t, err)
	pickup, err := kernel.NewTimeWindow(fixtureTime.Add(time.Hour), fixtureTime.Add(3*time.Hour))
	require.NoError(t, err)
	delivery, err := kernel.NewTimeWindow(fixtureTime.Add(72*time.Hour), fixtureTime.Add(74*time.Hour))
	require.NoError(t, err)

	return order.Details{
		CustomerID:      customerID,
		CustomerEmail:   "robin@example.com",
		PickupAddress:   pickupAddr,
		DeliveryAddress: deliveryAddr,
		PickupWindow:    pickup,
		DeliveryWindow:  delivery,
	}
}

func orderAt(t *testing.T, status order.Status, unlocked, generated bool) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(kernel.NewUUID(), detailsFor(t, kernel.NewUUID()), order.State{
		Status:           status,
		PaymentStatus:    order.PaymentPending,
		InvoiceUnlocked:  unlocked,
		InvoiceGenerated: generated,
		CreatedAt:        fixtureTime,
		UpdatedAt:        fixtureTime,
	})
	require.NoError(t, err)
	return o
}

func assignmentAt(
	t *testing.T, orderID, driverID kernel.UUID, kind assignment.Kind, status assignment.Status,
) *assignment.DriverAssignment {
	t.Helper()

	a, err := assignment.RestoreAssignment(kernel.NewUUID(), orderID, driverID, kind, status, "", nil, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return a
}

func statusPtr(s order.Status) *order.Status {
	return &s
}

func mockAnyNotification() any {
	return mock.AnythingOfType("notification.Notification")
}

func mockAnyPayload() any {
	return mock.AnythingOfType("[]uint8")
}
