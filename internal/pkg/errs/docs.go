// Package errs provides standardized error types for the laundry service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic value errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and the order lifecycle taxonomy:
//   - InvalidStepOrderError: a transition outside the adjacency table
//   - ActorNotPermittedError: the actor's role lacks rights for a transition
//   - OrderAlreadyTerminalError: a terminal order or assignment was mutated
//   - PhotoRequiredError: a photo-gated handoff arrived without a photo
//   - ConcurrentModificationError: a compare-and-set lost a race
//   - StorageError: an opaque persistence failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
