package order

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
)

// StatusChange is one entry of an order's status history. From is Unknown
// for the entry recorded at placement.
type StatusChange struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	From       Status
	To         Status
	ActorID    kernel.UUID
	ActorRole  actor.Role
	Note       string
	OccurredAt time.Time
}

func NewStatusChange(orderID kernel.UUID, from, to Status, by actor.Actor, note string, at time.Time) (StatusChange, error) {
	change := StatusChange{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		From:       from,
		To:         to,
		ActorID:    by.ID(),
		ActorRole:  by.Role(),
		Note:       strings.TrimSpace(note),
		OccurredAt: at.UTC(),
	}

	var fromErr error
	if from != Unknown {
		fromErr = from.Validate()
	}

	if err := errors.Join(orderID.Validate(), fromErr, to.Validate(), by.Validate()); err != nil {
		return StatusChange{}, err
	}
	return change, nil
}
