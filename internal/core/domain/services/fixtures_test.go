package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	allRoles = []actor.Role{actor.Customer, actor.Driver, actor.FacilityTeam, actor.Admin, actor.OperationManager}
	baseTime = time.Date(2026, 10, 16, 7, 0, 0, 0, time.UTC)
)

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func orderAt(t *testing.T, status order.Status, unlocked, generated bool) *order.Order {
	t.Helper()

	addr, err := kernel.NewAddress("99 Linen St", "Lakeside", "10001")
	require.NoError(t, err)
	pickup, err := kernel.NewTimeWindow(baseTime, baseTime.Add(2*time.Hour))
	require.NoError(t, err)
	delivery, err := kernel.NewTimeWindow(baseTime.Add(48*time.Hour), baseTime.Add(50*time.Hour))
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), order.Details{
		Number:          "LD-SVC-1",
		CustomerID:      kernel.NewUUID(),
		CustomerEmail:   "kim@example.com",
		PickupAddress:   addr,
		DeliveryAddress: addr,
		PickupWindow:    pickup,
		DeliveryWindow:  delivery,
	}, order.State{
		Status:           status,
		PaymentStatus:    order.PaymentPending,
		InvoiceUnlocked:  unlocked,
		InvoiceGenerated: generated,
		CreatedAt:        baseTime,
		UpdatedAt:        baseTime,
	})
	require.NoError(t, err)
	return o
}
