package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetDriverAssignmentsQueryIsNotConstructed = errors.New(
	"GetDriverAssignmentsQuery must be created via NewGetDriverAssignmentsQuery constructor",
)

// GetDriverAssignmentsQuery is a driver's work list: the active pickups and
// deliveries assigned to them. Drivers may only read their own list; staff
// may read anyone's.
type GetDriverAssignmentsQuery struct {
	driverID kernel.UUID
	viewer   actor.Actor
	guard    guard.ConstructorGuard
}

func NewGetDriverAssignmentsQuery(driverID kernel.UUID, viewer actor.Actor) (GetDriverAssignmentsQuery, error) {
	q := GetDriverAssignmentsQuery{guard: guard.NewConstructorGuard()}

	var idErr error
	if err := driverID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}

	if err := errors.Join(idErr, setViewer(&q.viewer, viewer)); err != nil {
		return GetDriverAssignmentsQuery{}, err
	}

	q.driverID = driverID
	return q, nil
}

func (q GetDriverAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverAssignmentsQueryIsNotConstructed)
}

func (q GetDriverAssignmentsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q GetDriverAssignmentsQuery) Viewer() actor.Actor {
	return q.viewer
}

// DriverTask is one active assignment with where and when the driver is due.
// Address and Window are the pickup ones for a pickup, the delivery ones for
// a delivery.
type DriverTask struct {
	AssignmentID kernel.UUID
	OrderID      kernel.UUID
	OrderNumber  string
	OrderStatus  order.Status
	Kind         assignment.Kind
	Status       assignment.Status
	Notes        string
	Address      kernel.Address
	Window       kernel.TimeWindow
	AssignedAt   time.Time
}
