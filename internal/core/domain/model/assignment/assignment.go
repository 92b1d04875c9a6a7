package assignment

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const notesMaxLength = 1000

var (
	ErrAssignmentIsNotConstructed = errors.New("DriverAssignment must be created via NewAssignment constructor")

	// ErrActiveAssignmentExists is returned when dispatching a driver while
	// the order still has an active assignment of the same kind.
	ErrActiveAssignmentExists = errors.New("order already has an active assignment of this kind")
)

// DriverAssignment is one driver's pickup or delivery task for an order.
// An order has at most one active assignment per kind; terminal assignments
// are retained as history and never resurrected.
type DriverAssignment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	driverID  kernel.UUID
	kind      Kind
	status    Status
	notes     string
	photos    []*Photo
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewAssignment dispatches a driver; the assignment starts in ASSIGNED.
func NewAssignment(id, orderID, driverID kernel.UUID, kind Kind, notes string, now time.Time) (*DriverAssignment, error) {
	a := &DriverAssignment{
		status:    Assigned,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDriverID(driverID),
		a.setKind(kind),
		a.setNotes(notes),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment rebuilds an assignment and its photos from storage.
func RestoreAssignment(
	id, orderID, driverID kernel.UUID,
	kind Kind,
	status Status,
	notes string,
	photos []*Photo,
	createdAt, updatedAt time.Time,
) (*DriverAssignment, error) {
	a := &DriverAssignment{
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setDriverID(driverID),
		a.setKind(kind),
		a.setStatus(status),
		a.setNotes(notes),
		a.setPhotos(photos),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *DriverAssignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *DriverAssignment) IsEqual(other *DriverAssignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *DriverAssignment) ID() kernel.UUID {
	return a.id
}

func (a *DriverAssignment) OrderID() kernel.UUID {
	return a.orderID
}

func (a *DriverAssignment) DriverID() kernel.UUID {
	return a.driverID
}

func (a *DriverAssignment) Kind() Kind {
	return a.kind
}

func (a *DriverAssignment) Status() Status {
	return a.status
}

func (a *DriverAssignment) Notes() string {
	return a.notes
}

// Photos returns a copy of the attached photos in capture order.
func (a *DriverAssignment) Photos() []*Photo {
	out := make([]*Photo, len(a.photos))
	copy(out, a.photos)
	return out
}

func (a *DriverAssignment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *DriverAssignment) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsActive is true until the assignment reaches a terminal status.
func (a *DriverAssignment) IsActive() bool {
	return !a.status.IsTerminalFor(a.kind)
}

func (a *DriverAssignment) IsAssignedTo(driverID kernel.UUID) bool {
	return a.driverID.IsEqual(driverID)
}

// Transition moves the assignment to the requested status.
//
// Photo-gated targets are checked first: without evidence the call fails with
// PhotoRequired whatever the current status is. After that a terminal
// assignment is rejected as already terminal and anything outside the
// adjacency table as an invalid step order.
//
// On success the photo created for a gated transition is returned and
// attached to the assignment; ungated transitions return a nil photo.
func (a *DriverAssignment) Transition(to Status, evidence *Evidence, at time.Time) (*Photo, error) {
	if err := to.Validate(); err != nil {
		return nil, err
	}

	photoType, gated := PhotoTypeFor(a.kind, to)
	if gated && !evidence.Provided() {
		return nil, errs.NewPhotoRequiredError(photoType.String())
	}

	if a.status.IsTerminalFor(a.kind) {
		return nil, errs.NewOrderAlreadyTerminalError("assignment "+a.id.String(), a.status, to)
	}
	if !CanTransition(a.kind, a.status, to) {
		return nil, errs.NewInvalidStepOrderError(a.status, to)
	}

	var photo *Photo
	if gated {
		var err error
		photo, err = NewPhoto(kernel.NewUUID(), a.id, photoType, evidence.URL, evidence.Description, at)
		if err != nil {
			return nil, err
		}
		a.photos = append(a.photos, photo)
	}

	a.status = to
	a.updatedAt = at.UTC()

	return photo, nil
}

func (a *DriverAssignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DriverAssignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	a.orderID = id
	return nil
}

func (a *DriverAssignment) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	a.driverID = id
	return nil
}

func (a *DriverAssignment) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	a.kind = kind
	return nil
}

func (a *DriverAssignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *DriverAssignment) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if n := utf8.RuneCountInString(notes); n > notesMaxLength {
		return errs.NewValueIsOutOfRangeError("notes length", n, 0, notesMaxLength)
	}
	a.notes = notes
	return nil
}

func (a *DriverAssignment) setPhotos(photos []*Photo) error {
	for _, p := range photos {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	a.photos = append([]*Photo(nil), photos...)
	return nil
}
