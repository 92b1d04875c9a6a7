// Package queries contains read-only use cases. Handlers read straight from
// PostgreSQL with raw SQL through gorm and never go through the aggregates.
package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// view names a read for authorization errors.
type view string

const (
	viewActiveOrders      view = "ACTIVE_ORDERS"
	viewOrder             view = "ORDER"
	viewDriverAssignments view = "DRIVER_ASSIGNMENTS"
)

func (v view) String() string {
	return string(v)
}

func setViewer(target *actor.Actor, viewer actor.Actor) error {
	if err := viewer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("viewer", err)
	}
	*target = viewer
	return nil
}

// authorizeOrderView checks that the order exists and that viewer may see it:
// staff see every order, customers their own, drivers those they were ever
// assigned to.
func authorizeOrderView(ctx context.Context, db *gorm.DB, orderID kernel.UUID, viewer actor.Actor) error {
	var row struct {
		CustomerID uuid.UUID
		Assigned   bool
	}

	err := db.WithContext(ctx).Raw(`
		SELECT
			o.customer_id,
			EXISTS (
				SELECT 1 FROM driver_assignments a
				WHERE a.order_id = o.id AND a.driver_id = ?
			) AS assigned
		FROM orders o
		WHERE o.id = ?
	`, viewer.ID().Bytes(), orderID.Bytes()).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		return errs.NewStorageError("select order access", err)
	}

	switch viewer.Role() {
	case actor.Customer:
		if row.CustomerID != viewer.ID().Bytes() {
			// Other customers' orders are reported as missing.
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
	case actor.Driver:
		if !row.Assigned {
			return errs.NewActorNotPermittedError(viewer.Role(), viewOrder, "not assigned to this order")
		}
	}

	return nil
}

func uuidFromColumn(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
