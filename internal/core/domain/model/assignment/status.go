package assignment

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the state of one driver assignment.
type Status int

const (
	UnknownStatus Status = iota
	Assigned
	InProgress
	Completed
	DroppedOff
	Failed
)

var statusNames = map[Status]string{
	Assigned:   "ASSIGNED",
	InProgress: "IN_PROGRESS",
	Completed:  "COMPLETED",
	DroppedOff: "DROPPED_OFF",
	Failed:     "FAILED",
}

// transitions is the adjacency table shared by both kinds. COMPLETED ->
// DROPPED_OFF is additionally restricted to pickups in CanTransition.
var transitions = map[Status][]Status{
	Assigned:   {InProgress, Failed},
	InProgress: {Completed, Failed},
	Completed:  {DroppedOff},
}

func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%q is not a valid assignment status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// IsTerminalFor reports whether an assignment of the given kind can leave s.
func (s Status) IsTerminalFor(kind Kind) bool {
	switch s {
	case DroppedOff, Failed:
		return true
	case Completed:
		return kind == Delivery
	default:
		return false
	}
}

// IsPhotoGated reports whether entering s needs photographic evidence.
func (s Status) IsPhotoGated() bool {
	return s == Completed || s == DroppedOff || s == Failed
}

// CanTransition reports whether the adjacency table allows from -> to for kind.
func CanTransition(kind Kind, from, to Status) bool {
	if from.IsTerminalFor(kind) {
		return false
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
