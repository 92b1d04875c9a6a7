package pgtest

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// FixtureTime is a fixed clock for persisted fixtures, truncated to the
// microsecond precision of timestamptz.
var FixtureTime = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

// Order builds a valid order in status for a fresh customer.
func Order(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	return OrderFor(t, kernel.NewUUID(), status)
}

// OrderFor builds a valid order in status for customerID.
func OrderFor(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	pickupAddr, err := kernel.NewAddress("4 Starch Ln", "Riverton", "84065")
	require.NoError(t, err)
	deliveryAddr, err := kernel.NewAddress("18 Press Ct", "Riverton", "84065")
	require.NoError(t, err)
	pickup, err := kernel.NewTimeWindow(FixtureTime.Add(time.Hour), FixtureTime.Add(3*time.Hour))
	require.NoError(t, err)
	delivery, err := kernel.NewTimeWindow(FixtureTime.Add(72*time.Hour), FixtureTime.Add(74*time.Hour))
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), order.Details{
		CustomerID:      customerID,
		CustomerEmail:   "robin@example.com",
		PickupAddress:   pickupAddr,
		DeliveryAddress: deliveryAddr,
		PickupWindow:    pickup,
		DeliveryWindow:  delivery,
	}, order.State{
		Status:        status,
		PaymentStatus: order.PaymentPending,
		CreatedAt:     FixtureTime,
		UpdatedAt:     FixtureTime,
	})
	require.NoError(t, err)
	return o
}

// Assignment builds an assignment of kind in status for orderID.
func Assignment(
	t *testing.T, orderID, driverID kernel.UUID, kind assignment.Kind, status assignment.Status,
) *assignment.DriverAssignment {
	t.Helper()

	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(), orderID, driverID, kind, status, "", nil, FixtureTime, FixtureTime,
	)
	require.NoError(t, err)
	return a
}
