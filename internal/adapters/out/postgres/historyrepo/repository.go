// Package historyrepo appends order status changes to the immutable
// order_status_history table.
package historyrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusChangeDTO is one row of order_status_history. FromStatus is NULL for
// the placement entry.
type StatusChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus *string   `gorm:"type:varchar(32)"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(32);not null"`
	Note       string    `gorm:"type:text;not null;default:''"`
	OccurredAt time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(change order.StatusChange) StatusChangeDTO {
	var from *string
	if change.From != order.Unknown {
		name := change.From.String()
		from = &name
	}

	return StatusChangeDTO{
		ID:         change.ID.Bytes(),
		OrderID:    change.OrderID.Bytes(),
		FromStatus: from,
		ToStatus:   change.To.String(),
		ActorID:    change.ActorID.Bytes(),
		ActorRole:  change.ActorRole.String(),
		Note:       change.Note,
		OccurredAt: change.OccurredAt,
	}
}

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts one history entry. Entries are never updated or deleted.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	if err := change.ID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(change)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("insert status history", err)
	}

	return nil
}
