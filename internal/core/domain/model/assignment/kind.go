package assignment

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Kind tells pickup tasks from delivery tasks.
type Kind int

const (
	UnknownKind Kind = iota
	Pickup
	Delivery
)

var kindNames = map[Kind]string{
	Pickup:   "pickup",
	Delivery: "delivery",
}

func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == normalized {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("assignment kind", fmt.Errorf("%q is not pickup or delivery", s))
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}
