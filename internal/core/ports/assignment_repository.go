package ports

import (
	"context"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for driver assignments
// and their photos. Assignments are retained as history.
type AssignmentRepository interface {
	// Add persists a new assignment.
	// Returns assignment.ErrActiveAssignmentExists when the order already has
	// an active assignment of the same kind.
	Add(ctx context.Context, aggregate *assignment.DriverAssignment) error

	// Get retrieves an assignment with its photos.
	Get(ctx context.Context, id kernel.UUID) (*assignment.DriverAssignment, error)

	// GetActive retrieves the non-terminal assignment of kind for an order.
	// Returns errs.ErrObjectNotFound when there is none.
	GetActive(ctx context.Context, orderID kernel.UUID, kind assignment.Kind) (*assignment.DriverAssignment, error)

	// ListByOrder returns every assignment of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.DriverAssignment, error)

	// CompareAndSetStatus persists the assignment status only if the stored
	// status still equals expected; otherwise errs.ErrConcurrentModification.
	CompareAndSetStatus(ctx context.Context, aggregate *assignment.DriverAssignment, expected assignment.Status) error

	// AddPhoto persists the evidence of a photo-gated transition.
	AddPhoto(ctx context.Context, photo *assignment.Photo) error
}
