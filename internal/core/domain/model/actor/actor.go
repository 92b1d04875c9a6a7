// Package actor describes who requests a lifecycle transition. Actors are
// resolved and authenticated at the boundary; the domain only trusts them.
package actor

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Role is the back-office or customer role carried by a session.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Driver
	FacilityTeam
	Admin
	OperationManager
)

var roleNames = map[Role]string{
	Customer:         "CUSTOMER",
	Driver:           "DRIVER",
	FacilityTeam:     "FACILITY_TEAM",
	Admin:            "ADMIN",
	OperationManager: "OPERATION_MANAGER",
}

// ParseRole accepts the upper-case wire name of a role, case-insensitively.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports whether the role belongs to the back office.
func (r Role) IsStaff() bool {
	return r == FacilityTeam || r == Admin || r == OperationManager
}

// Actor is an authenticated principal acting on an order.
type Actor struct {
	id   kernel.UUID
	role Role
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Validate fails for zero-value actors.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}

// HasRole reports whether the actor holds one of roles.
func (a Actor) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.role == r {
			return true
		}
	}
	return false
}

func (a Actor) String() string {
	return fmt.Sprintf("%s(%s)", a.role, a.id)
}
