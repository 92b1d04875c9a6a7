// Package outboxrepo stores outbox messages written in the same transaction as
// the order changes that produced them.
package outboxrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO represents one outbox row. The payload is the JSON envelope.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	Attempts    int        `gorm:"not null;default:0"`
	State       string     `gorm:"type:varchar(16);not null"`
	LastError   string     `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	ProcessedAt *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		Kind:        string(m.Kind()),
		AggregateID: m.AggregateID().Bytes(),
		Payload:     m.Payload(),
		Attempts:    m.Attempts(),
		State:       string(m.State()),
		LastError:   m.LastError(),
		CreatedAt:   m.CreatedAt(),
		ProcessedAt: m.ProcessedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(
		id,
		outbox.Kind(dto.Kind),
		aggregateID,
		dto.Payload,
		dto.Attempts,
		outbox.State(dto.State),
		dto.LastError,
		dto.CreatedAt,
		dto.ProcessedAt,
	)
}
