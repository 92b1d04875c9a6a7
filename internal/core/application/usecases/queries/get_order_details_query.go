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

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery reads one order with its assignments and photos.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID
	viewer  actor.Actor
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.UUID, viewer actor.Actor) (GetOrderDetailsQuery, error) {
	q := GetOrderDetailsQuery{guard: guard.NewConstructorGuard()}

	var idErr error
	if err := orderID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	if err := errors.Join(idErr, setViewer(&q.viewer, viewer)); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	q.orderID = orderID
	return q, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderDetailsQuery) Viewer() actor.Actor {
	return q.viewer
}

// OrderDetails is the full read model of one order.
type OrderDetails struct {
	ID               kernel.UUID
	Number           string
	CustomerID       kernel.UUID
	CustomerEmail    string
	PickupAddress    kernel.Address
	DeliveryAddress  kernel.Address
	PickupWindow     kernel.TimeWindow
	DeliveryWindow   kernel.TimeWindow
	Status           order.Status
	PaymentStatus    order.PaymentStatus
	InvoiceUnlocked  bool
	InvoiceGenerated bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// NextStatuses are the statuses the viewer may request next.
	NextStatuses []order.Status
	Assignments  []AssignmentView
}

// AssignmentView is one driver assignment of an order, oldest first.
type AssignmentView struct {
	ID        kernel.UUID
	DriverID  kernel.UUID
	Kind      assignment.Kind
	Status    assignment.Status
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Photos    []PhotoView
}

type PhotoView struct {
	ID          kernel.UUID
	Type        assignment.PhotoType
	URL         string
	Description string
	TakenAt     time.Time
}
