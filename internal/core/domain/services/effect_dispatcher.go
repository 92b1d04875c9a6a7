package services

import (
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
)

// PhotoCapture is the evidence a driver handoff must carry.
type PhotoCapture struct {
	Kind      assignment.Kind
	Status    assignment.Status
	PhotoType assignment.PhotoType
}

// Effects is the set of side effects a transition requires. The zero value
// means nothing to do.
type Effects struct {
	// Notify is the customer template to send; empty for none.
	Notify notification.Template
	// UnlockInvoice flips the one-time invoice eligibility flag.
	UnlockInvoice bool
	// CapturePhoto is set for photo-gated driver handoffs.
	CapturePhoto *PhotoCapture
}

func (e Effects) IsEmpty() bool {
	return e.Notify == "" && !e.UnlockInvoice && e.CapturePhoto == nil
}

// EffectDispatcher maps a transition to its side effects.
//
// Business rules:
//   - Every real transition (old != new) sends exactly one customer
//     notification keyed by the new status
//   - DELIVERED on an invoiced order sends payment_completed instead of the
//     generic delivered template
//   - PROCESSING_COMPLETED and READY_FOR_DELIVERY unlock invoice generation
//     unless the order is already unlocked
//   - Driver handoffs into COMPLETED, DROPPED_OFF or FAILED need a photo
//
// Dispatch is a pure function of the order's flags and the two statuses; it
// changes nothing. The caller applies the returned Effects.
type EffectDispatcher struct{}

func NewEffectDispatcher() EffectDispatcher {
	return EffectDispatcher{}
}

// Dispatch computes the effects of moving o from oldStatus to newStatus.
//
// Parameters:
//   - o: the order as it was before the transition (its invoice flags are read)
//   - oldStatus, newStatus: the transition being committed
//
// Returns:
//   - Effects: empty for a no-op transition except for a pending invoice unlock
func (d EffectDispatcher) Dispatch(o *order.Order, oldStatus, newStatus order.Status) Effects {
	var effects Effects

	if oldStatus != newStatus {
		effects.Notify = d.templateFor(o, newStatus)
		effects.CapturePhoto = photoCaptureFor(newStatus)
	}
	effects.UnlockInvoice = d.shouldUnlock(o, newStatus)

	return effects
}

// Redispatch is the admin re-send of the current status. The notification is
// always sent again; the invoice unlock still fires at most once.
func (d EffectDispatcher) Redispatch(o *order.Order) Effects {
	return Effects{
		Notify:        d.templateFor(o, o.Status()),
		UnlockInvoice: d.shouldUnlock(o, o.Status()),
	}
}

func (d EffectDispatcher) templateFor(o *order.Order, status order.Status) notification.Template {
	if status == order.Delivered && o.InvoiceGenerated() {
		return notification.PaymentCompleted
	}
	t, err := notification.TemplateFor(status)
	if err != nil {
		return ""
	}
	return t
}

func (d EffectDispatcher) shouldUnlock(o *order.Order, status order.Status) bool {
	if o.InvoiceUnlocked() {
		return false
	}
	return status == order.ProcessingCompleted || status == order.ReadyForDelivery
}

func photoCaptureFor(status order.Status) *PhotoCapture {
	h, ok := HandoffFor(status)
	if !ok {
		return nil
	}
	photoType, gated := h.PhotoType()
	if !gated {
		return nil
	}
	return &PhotoCapture{Kind: h.Kind, Status: h.Status, PhotoType: photoType}
}
