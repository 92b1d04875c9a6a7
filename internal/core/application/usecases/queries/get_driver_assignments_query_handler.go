package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDriverAssignmentsQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverAssignmentsQueryHandler(db *gorm.DB) GetDriverAssignmentsQueryHandler {
	return GetDriverAssignmentsQueryHandler{db: db}
}

type driverTaskRow struct {
	AssignmentID uuid.UUID
	OrderID      uuid.UUID
	OrderNumber  string
	OrderStatus  string
	Kind         string
	Status       string
	Notes        string
	Street       string
	City         string
	PostalCode   string
	WindowStart  time.Time
	WindowEnd    time.Time
	AssignedAt   time.Time
}

// Handle lists the driver's active assignments by the start of their window.
// Assignments of terminal orders are left out; closing an order does not
// touch its assignments.
func (h GetDriverAssignmentsQueryHandler) Handle(ctx context.Context, query GetDriverAssignmentsQuery) ([]DriverTask, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	viewer := query.Viewer()
	ownList := viewer.Role() == actor.Driver && viewer.ID().IsEqual(query.DriverID())
	if !ownList && !viewer.Role().IsStaff() {
		return nil, errs.NewActorNotPermittedError(viewer.Role(), viewDriverAssignments, "")
	}

	var rows []driverTaskRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id         AS assignment_id,
			o.id         AS order_id,
			o.number     AS order_number,
			o.status     AS order_status,
			a.kind,
			a.status,
			a.notes,
			CASE WHEN a.kind = 'pickup' THEN o.pickup_street ELSE o.delivery_street END           AS street,
			CASE WHEN a.kind = 'pickup' THEN o.pickup_city ELSE o.delivery_city END               AS city,
			CASE WHEN a.kind = 'pickup' THEN o.pickup_postal_code ELSE o.delivery_postal_code END AS postal_code,
			CASE WHEN a.kind = 'pickup' THEN o.pickup_window_start ELSE o.delivery_window_start END AS window_start,
			CASE WHEN a.kind = 'pickup' THEN o.pickup_window_end ELSE o.delivery_window_end END   AS window_end,
			a.created_at AS assigned_at
		FROM driver_assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.driver_id = ?
		  AND (a.status IN ('ASSIGNED', 'IN_PROGRESS') OR (a.kind = 'pickup' AND a.status = 'COMPLETED'))
		  AND o.status NOT IN ?
		ORDER BY window_start, a.id
	`, query.DriverID().Bytes(), terminalStatusNames()).Scan(&rows).Error; err != nil {
		return nil, errs.NewStorageError("select driver assignments", err)
	}

	tasks := make([]DriverTask, 0, len(rows))
	for _, row := range rows {
		task, err := row.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r driverTaskRow) toTask() (DriverTask, error) {
	task := DriverTask{
		OrderNumber: r.OrderNumber,
		Notes:       r.Notes,
		AssignedAt:  r.AssignedAt,
	}

	var err error
	if task.AssignmentID, err = uuidFromColumn(r.AssignmentID); err != nil {
		return DriverTask{}, err
	}
	if task.OrderID, err = uuidFromColumn(r.OrderID); err != nil {
		return DriverTask{}, err
	}
	if task.OrderStatus, err = order.ParseStatus(r.OrderStatus); err != nil {
		return DriverTask{}, err
	}
	if task.Kind, err = assignment.ParseKind(r.Kind); err != nil {
		return DriverTask{}, err
	}
	if task.Status, err = assignment.ParseStatus(r.Status); err != nil {
		return DriverTask{}, err
	}
	if task.Address, err = kernel.NewAddress(r.Street, r.City, r.PostalCode); err != nil {
		return DriverTask{}, err
	}
	if task.Window, err = kernel.NewTimeWindow(r.WindowStart, r.WindowEnd); err != nil {
		return DriverTask{}, err
	}

	return task, nil
}
