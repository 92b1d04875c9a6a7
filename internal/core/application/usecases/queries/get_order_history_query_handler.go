package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns every status change of the order in the order it happened.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]StatusChangeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := authorizeOrderView(ctx, h.db, query.OrderID(), query.Viewer()); err != nil {
		return nil, err
	}

	// Entries written in one transaction share occurred_at; the placement
	// entry (no from status) sorts first.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			actor_role,
			note,
			occurred_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY occurred_at, from_status IS NOT NULL, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("select order history", err)
	}
	defer rows.Close()

	history := make([]StatusChangeView, 0)
	for rows.Next() {
		var (
			entry    StatusChangeView
			from     sql.NullString
			to, role string
			actorID  uuid.UUID
		)

		if err = rows.Scan(&from, &to, &actorID, &role, &entry.Note, &entry.OccurredAt); err != nil {
			return nil, errs.NewStorageError("scan order history", err)
		}

		if from.Valid {
			if entry.From, err = order.ParseStatus(from.String); err != nil {
				return nil, err
			}
		}
		if entry.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}
		if entry.ActorID, err = uuidFromColumn(actorID); err != nil {
			return nil, err
		}
		if entry.ActorRole, err = actor.ParseRole(role); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("iterate order history", err)
	}

	return history, nil
}
