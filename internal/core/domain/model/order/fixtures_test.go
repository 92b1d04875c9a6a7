package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

func validDetails(t *testing.T) order.Details {
	t.Helper()

	pickupAddr, err := kernel.NewAddress("12 Rinse Rd", "Springfield", "49007")
	require.NoError(t, err)
	deliveryAddr, err := kernel.NewAddress("7 Fold Ave", "Springfield", "49007")
	require.NoError(t, err)
	pickupWindow, err := kernel.NewTimeWindow(placedAt.Add(2*time.Hour), placedAt.Add(4*time.Hour))
	require.NoError(t, err)
	deliveryWindow, err := kernel.NewTimeWindow(placedAt.Add(48*time.Hour), placedAt.Add(50*time.Hour))
	require.NoError(t, err)

	return order.Details{
		Number:          "LD-TEST-0001",
		CustomerID:      kernel.NewUUID(),
		CustomerEmail:   "jamie@example.com",
		PickupAddress:   pickupAddr,
		DeliveryAddress: deliveryAddr,
		PickupWindow:    pickupWindow,
		DeliveryWindow:  deliveryWindow,
	}
}

func restoreAt(t *testing.T, status order.Status, unlocked, generated bool) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(kernel.NewUUID(), validDetails(t), order.State{
		Status:           status,
		PaymentStatus:    order.PaymentPending,
		InvoiceUnlocked:  unlocked,
		InvoiceGenerated: generated,
		CreatedAt:        placedAt,
		UpdatedAt:        placedAt,
	})
	require.NoError(t, err)
	return o
}
