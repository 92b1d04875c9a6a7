package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStepOrder is returned when a requested transition skips or
	// reverses lifecycle steps.
	ErrInvalidStepOrder = errors.New("invalid step order")

	// ErrActorNotPermitted is returned when the acting role may not request a transition.
	ErrActorNotPermitted = errors.New("actor not permitted")

	// ErrOrderAlreadyTerminal is returned when a terminal entity is mutated.
	ErrOrderAlreadyTerminal = errors.New("order already terminal")

	// ErrPhotoRequired is returned when a photo-gated transition has no photo attached.
	ErrPhotoRequired = errors.New("photo required")

	// ErrConcurrentModification is returned when a compare-and-set lost a race.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrStorage wraps opaque persistence backend failures.
	ErrStorage = errors.New("storage error")
)

// InvalidStepOrderError describes a transition outside of the adjacency table.
type InvalidStepOrderError struct {
	From string
	To   string
}

func NewInvalidStepOrderError(from, to fmt.Stringer) *InvalidStepOrderError {
	return &InvalidStepOrderError{From: from.String(), To: to.String()}
}

func (e *InvalidStepOrderError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStepOrder, e.From, e.To)
}

func (e *InvalidStepOrderError) Unwrap() error {
	return ErrInvalidStepOrder
}

// ActorNotPermittedError describes a role that lacks rights for a target status.
type ActorNotPermittedError struct {
	Role   string
	Target string
	Reason string
}

func NewActorNotPermittedError(role, target fmt.Stringer, reason string) *ActorNotPermittedError {
	return &ActorNotPermittedError{
		Role:   role.String(),
		Target: target.String(),
		Reason: reason,
	}
}

func (e *ActorNotPermittedError) Error() string {
	msg := fmt.Sprintf("%s: %s may not request %s", ErrActorNotPermitted, e.Role, e.Target)
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	return msg
}

func (e *ActorNotPermittedError) Unwrap() error {
	return ErrActorNotPermitted
}

// OrderAlreadyTerminalError describes a mutation attempt on a terminal entity.
type OrderAlreadyTerminalError struct {
	Entity string
	Status string
	Target string
}

func NewOrderAlreadyTerminalError(entity string, status, target fmt.Stringer) *OrderAlreadyTerminalError {
	return &OrderAlreadyTerminalError{
		Entity: entity,
		Status: status.String(),
		Target: target.String(),
	}
}

func (e *OrderAlreadyTerminalError) Error() string {
	return fmt.Sprintf("%s: %s is %s, cannot move to %s", ErrOrderAlreadyTerminal, e.Entity, e.Status, e.Target)
}

func (e *OrderAlreadyTerminalError) Unwrap() error {
	return ErrOrderAlreadyTerminal
}

// PhotoRequiredError names the photo type that must accompany a transition.
type PhotoRequiredError struct {
	PhotoType string
}

func NewPhotoRequiredError(photoType string) *PhotoRequiredError {
	return &PhotoRequiredError{PhotoType: photoType}
}

func (e *PhotoRequiredError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPhotoRequired, e.PhotoType)
}

func (e *PhotoRequiredError) Unwrap() error {
	return ErrPhotoRequired
}

// ConcurrentModificationError reports a stale expected status on a compare-and-set.
type ConcurrentModificationError struct {
	Entity   string
	ID       string
	Expected string
}

func NewConcurrentModificationError(entity, id string, expected fmt.Stringer) *ConcurrentModificationError {
	return &ConcurrentModificationError{
		Entity:   entity,
		ID:       id,
		Expected: expected.String(),
	}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s is no longer %s", ErrConcurrentModification, e.Entity, e.ID, e.Expected)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// StorageError wraps a backend failure for a named operation. Both the
// ErrStorage sentinel and the backend cause are reachable through errors.Is.
type StorageError struct {
	Operation string
	Cause     error
}

func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorage, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorage, e.Operation)
}

func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorage}
	}
	return []error{ErrStorage, e.Cause}
}
