package queries

import (
	"context"
	"strings"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the active orders list.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns non-terminal orders, oldest first. Drivers are refused:
// their work list is GetDriverAssignments.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	viewer := query.Viewer()
	if viewer.Role() == actor.Driver {
		return nil, errs.NewActorNotPermittedError(viewer.Role(), viewActiveOrders, "")
	}

	var (
		where []string
		args  []any
	)

	where = append(where, "status NOT IN ?")
	args = append(args, terminalStatusNames())

	if status, ok := query.Status(); ok {
		where = append(where, "status = ?")
		args = append(args, status.String())
	}
	if viewer.Role() == actor.Customer {
		where = append(where, "customer_id = ?")
		args = append(args, viewer.ID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			status,
			payment_status,
			invoice_unlocked,
			invoice_generated,
			pickup_window_start,
			delivery_window_start,
			created_at,
			updated_at
		FROM orders
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY created_at, id
	`, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageError("select active orders", err)
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary             OrderSummary
			id, customerID      uuid.UUID
			status, paymentName string
		)

		if err = rows.Scan(
			&id,
			&summary.Number,
			&customerID,
			&status,
			&paymentName,
			&summary.InvoiceUnlocked,
			&summary.InvoiceGenerated,
			&summary.PickupWindowStart,
			&summary.DeliveryWindowStart,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, errs.NewStorageError("scan active order", err)
		}

		if summary.ID, err = uuidFromColumn(id); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = uuidFromColumn(customerID); err != nil {
			return nil, err
		}
		if summary.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if summary.PaymentStatus, err = order.ParsePaymentStatus(paymentName); err != nil {
			return nil, err
		}

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("iterate active orders", err)
	}

	return orders, nil
}

func terminalStatusNames() []string {
	var names []string
	for _, s := range order.AllStatuses() {
		if s.IsTerminal() {
			names = append(names, s.String())
		}
	}
	return names
}
