// Package assignment models a driver's single pickup or delivery task.
//
// An assignment moves through its own small lifecycle, coupled to but
// separate from the order status:
//
//	ASSIGNED -> IN_PROGRESS -> COMPLETED -> DROPPED_OFF (pickup only)
//	ASSIGNED | IN_PROGRESS -> FAILED
//
// COMPLETED (delivery), DROPPED_OFF and FAILED are terminal. A terminal
// assignment is kept as history; re-dispatch creates a new record.
//
// Transitions into COMPLETED, DROPPED_OFF and FAILED are photo-gated: the
// driver must attach a photo in the same operation and a Photo record of
// type {kind}_{completed|dropped_off|failed}_photo is created with it.
package assignment
