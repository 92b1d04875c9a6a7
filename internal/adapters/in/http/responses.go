package http

import (
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/generated/servers"
)

func newAddress(a kernel.Address) servers.Address {
	return servers.Address{Street: a.Street(), City: a.City(), PostalCode: a.PostalCode()}
}

func newTimeWindow(w kernel.TimeWindow) servers.TimeWindow {
	return servers.TimeWindow{Start: w.Start(), End: w.End()}
}

func newOrderSummaries(summaries []queries.OrderSummary) []servers.OrderSummary {
	out := make([]servers.OrderSummary, len(summaries))
	for i, s := range summaries {
		out[i] = servers.OrderSummary{
			Id:                  s.ID.Bytes(),
			Number:              s.Number,
			CustomerId:          s.CustomerID.Bytes(),
			Status:              s.Status.String(),
			PaymentStatus:       s.PaymentStatus.String(),
			InvoiceUnlocked:     s.InvoiceUnlocked,
			InvoiceGenerated:    s.InvoiceGenerated,
			PickupWindowStart:   s.PickupWindowStart,
			DeliveryWindowStart: s.DeliveryWindowStart,
			CreatedAt:           s.CreatedAt,
			UpdatedAt:           s.UpdatedAt,
		}
	}
	return out
}

func newOrderDetails(d queries.OrderDetails) servers.OrderDetails {
	assignments := make([]servers.Assignment, len(d.Assignments))
	for i, a := range d.Assignments {
		photos := make([]servers.Photo, len(a.Photos))
		for j, p := range a.Photos {
			photos[j] = servers.Photo{
				Id:          p.ID.Bytes(),
				Type:        string(p.Type),
				Url:         p.URL,
				Description: optional(p.Description),
				TakenAt:     p.TakenAt,
			}
		}
		assignments[i] = servers.Assignment{
			Id:        a.ID.Bytes(),
			DriverId:  a.DriverID.Bytes(),
			Kind:      a.Kind.String(),
			Status:    a.Status.String(),
			Notes:     optional(a.Notes),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
			Photos:    photos,
		}
	}

	return servers.OrderDetails{
		Id:               d.ID.Bytes(),
		Number:           d.Number,
		CustomerId:       d.CustomerID.Bytes(),
		CustomerEmail:    d.CustomerEmail,
		PickupAddress:    newAddress(d.PickupAddress),
		DeliveryAddress:  newAddress(d.DeliveryAddress),
		PickupWindow:     newTimeWindow(d.PickupWindow),
		DeliveryWindow:   newTimeWindow(d.DeliveryWindow),
		Status:           d.Status.String(),
		PaymentStatus:    d.PaymentStatus.String(),
		InvoiceUnlocked:  d.InvoiceUnlocked,
		InvoiceGenerated: d.InvoiceGenerated,
		NextStatuses:     statusNames(d.NextStatuses),
		Assignments:      assignments,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func newStatusChanges(changes []queries.StatusChangeView) []servers.StatusChange {
	out := make([]servers.StatusChange, len(changes))
	for i, c := range changes {
		out[i] = servers.StatusChange{
			To:         c.To.String(),
			ActorId:    c.ActorID.Bytes(),
			ActorRole:  c.ActorRole.String(),
			Note:       optional(c.Note),
			OccurredAt: c.OccurredAt,
		}
		if c.From != order.Unknown {
			out[i].From = optional(c.From.String())
		}
	}
	return out
}

func newDriverTasks(tasks []queries.DriverTask) []servers.DriverTask {
	out := make([]servers.DriverTask, len(tasks))
	for i, t := range tasks {
		out[i] = servers.DriverTask{
			AssignmentId: t.AssignmentID.Bytes(),
			OrderId:      t.OrderID.Bytes(),
			OrderNumber:  t.OrderNumber,
			OrderStatus:  t.OrderStatus.String(),
			Kind:         t.Kind.String(),
			Status:       t.Status.String(),
			Notes:        optional(t.Notes),
			Address:      newAddress(t.Address),
			Window:       newTimeWindow(t.Window),
			AssignedAt:   t.AssignedAt,
		}
	}
	return out
}

func statusNames(statuses []order.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
