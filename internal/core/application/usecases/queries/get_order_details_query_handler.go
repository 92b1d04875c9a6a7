package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads an order, its assignments and their photos.
type GetOrderDetailsQueryHandler struct {
	db        *gorm.DB
	validator services.TransitionValidator
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{
		db:        db,
		validator: services.NewTransitionValidator(),
	}
}

type orderRow struct {
	ID                  uuid.UUID
	Number              string
	CustomerID          uuid.UUID
	CustomerEmail       string
	PickupStreet        string
	PickupCity          string
	PickupPostalCode    string
	DeliveryStreet      string
	DeliveryCity        string
	DeliveryPostalCode  string
	PickupWindowStart   time.Time
	PickupWindowEnd     time.Time
	DeliveryWindowStart time.Time
	DeliveryWindowEnd   time.Time
	Status              string
	PaymentStatus       string
	InvoiceUnlocked     bool
	InvoiceGenerated    bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type assignmentRow struct {
	ID        uuid.UUID
	DriverID  uuid.UUID
	Kind      string
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type photoRow struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	PhotoType    string
	URL          string
	Description  string
	TakenAt      time.Time
}

// Handle returns the order as the viewer may see it. Customers asking for
// another customer's order get ObjectNotFound.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	if err := authorizeOrderView(ctx, h.db, query.OrderID(), query.Viewer()); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var o orderRow
	if err := db.Raw(`
		SELECT
			id, number, customer_id, customer_email,
			pickup_street, pickup_city, pickup_postal_code,
			delivery_street, delivery_city, delivery_postal_code,
			pickup_window_start, pickup_window_end,
			delivery_window_start, delivery_window_end,
			status, payment_status, invoice_unlocked, invoice_generated,
			created_at, updated_at
		FROM orders
		WHERE id = ?
	`, orderID).Take(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderDetails{}, errs.NewStorageError("select order details", err)
	}

	var assignments []assignmentRow
	if err := db.Raw(`
		SELECT id, driver_id, kind, status, notes, created_at, updated_at
		FROM driver_assignments
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Scan(&assignments).Error; err != nil {
		return OrderDetails{}, errs.NewStorageError("select order assignments", err)
	}

	var photos []photoRow
	if err := db.Raw(`
		SELECT p.id, p.assignment_id, p.photo_type, p.url, p.description, p.taken_at
		FROM assignment_photos p
		JOIN driver_assignments a ON a.id = p.assignment_id
		WHERE a.order_id = ?
		ORDER BY p.taken_at, p.id
	`, orderID).Scan(&photos).Error; err != nil {
		return OrderDetails{}, errs.NewStorageError("select assignment photos", err)
	}

	details, err := o.toDetails()
	if err != nil {
		return OrderDetails{}, err
	}

	if details.Assignments, err = toAssignmentViews(assignments, photos); err != nil {
		return OrderDetails{}, err
	}
	details.NextStatuses = h.nextStatuses(details, query.Viewer())

	return details, nil
}

// nextStatuses keeps the adjacent statuses the viewer's role may request.
// Assignment ownership is checked again when the change is submitted.
func (h GetOrderDetailsQueryHandler) nextStatuses(details OrderDetails, viewer actor.Actor) []order.Status {
	next := make([]order.Status, 0)
	for _, to := range h.validator.AllowedTargets(details.Status) {
		if viewer.HasRole(h.validator.RequiredRoles(to)...) {
			next = append(next, to)
		}
	}
	return next
}

func (o orderRow) toDetails() (OrderDetails, error) {
	var (
		details OrderDetails
		err     error
	)

	if details.ID, err = uuidFromColumn(o.ID); err != nil {
		return OrderDetails{}, err
	}
	if details.CustomerID, err = uuidFromColumn(o.CustomerID); err != nil {
		return OrderDetails{}, err
	}
	if details.PickupAddress, err = kernel.NewAddress(o.PickupStreet, o.PickupCity, o.PickupPostalCode); err != nil {
		return OrderDetails{}, err
	}
	if details.DeliveryAddress, err = kernel.NewAddress(o.DeliveryStreet, o.DeliveryCity, o.DeliveryPostalCode); err != nil {
		return OrderDetails{}, err
	}
	if details.PickupWindow, err = kernel.NewTimeWindow(o.PickupWindowStart, o.PickupWindowEnd); err != nil {
		return OrderDetails{}, err
	}
	if details.DeliveryWindow, err = kernel.NewTimeWindow(o.DeliveryWindowStart, o.DeliveryWindowEnd); err != nil {
		return OrderDetails{}, err
	}
	if details.Status, err = order.ParseStatus(o.Status); err != nil {
		return OrderDetails{}, err
	}
	if details.PaymentStatus, err = order.ParsePaymentStatus(o.PaymentStatus); err != nil {
		return OrderDetails{}, err
	}

	details.Number = o.Number
	details.CustomerEmail = o.CustomerEmail
	details.InvoiceUnlocked = o.InvoiceUnlocked
	details.InvoiceGenerated = o.InvoiceGenerated
	details.CreatedAt = o.CreatedAt
	details.UpdatedAt = o.UpdatedAt

	return details, nil
}

func toAssignmentViews(assignments []assignmentRow, photos []photoRow) ([]AssignmentView, error) {
	byAssignment := make(map[uuid.UUID][]PhotoView)
	for _, p := range photos {
		id, err := uuidFromColumn(p.ID)
		if err != nil {
			return nil, err
		}
		byAssignment[p.AssignmentID] = append(byAssignment[p.AssignmentID], PhotoView{
			ID:          id,
			Type:        assignment.PhotoType(p.PhotoType),
			URL:         p.URL,
			Description: p.Description,
			TakenAt:     p.TakenAt,
		})
	}

	views := make([]AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		item := AssignmentView{
			Notes:     a.Notes,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
			Photos:    byAssignment[a.ID],
		}

		var err error
		if item.ID, err = uuidFromColumn(a.ID); err != nil {
			return nil, err
		}
		if item.DriverID, err = uuidFromColumn(a.DriverID); err != nil {
			return nil, err
		}
		if item.Kind, err = assignment.ParseKind(a.Kind); err != nil {
			return nil, err
		}
		if item.Status, err = assignment.ParseStatus(a.Status); err != nil {
			return nil, err
		}

		views = append(views, item)
	}

	return views, nil
}
