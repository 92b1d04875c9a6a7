package order

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvoiceLocked is returned when an invoice is requested before the
	// order reached PROCESSING_COMPLETED or READY_FOR_DELIVERY.
	ErrInvoiceLocked = errors.New("invoice generation is not unlocked for this order")

	// ErrInvoiceAlreadyGenerated is returned on a second invoice generation.
	ErrInvoiceAlreadyGenerated = errors.New("invoice has already been generated")

	orderNumberPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{3,31}$`)
)

// Details are the customer supplied facts of an order, fixed at placement.
type Details struct {
	// Number is the human-facing order number; generated from the id when empty.
	Number          string
	CustomerID      kernel.UUID
	CustomerEmail   string
	PickupAddress   kernel.Address
	DeliveryAddress kernel.Address
	PickupWindow    kernel.TimeWindow
	DeliveryWindow  kernel.TimeWindow
}

// State is the mutable lifecycle part of an order, as persisted.
type State struct {
	Status           Status
	PaymentStatus    PaymentStatus
	InvoiceUnlocked  bool
	InvoiceGenerated bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Order is the aggregate root of the laundry lifecycle. It holds exactly one
// current status and is never deleted: cancellation and refund are statuses.
//
// The aggregate records status changes but does not judge their legality;
// that belongs to services.TransitionValidator, which needs the acting role.
type Order struct {
	id      kernel.UUID
	details Details
	state   State
	guard   guard.ConstructorGuard
}

// NewOrder places an order in ORDER_PLACED with payment PENDING.
func NewOrder(id kernel.UUID, details Details, now time.Time) (*Order, error) {
	o := &Order{
		state: State{
			Status:        Placed,
			PaymentStatus: PaymentPending,
			CreatedAt:     now.UTC(),
			UpdatedAt:     now.UTC(),
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(o.setID(id), o.setDetails(details)); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(id kernel.UUID, details Details, state State) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setState(state),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.details.Number
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) CustomerID() kernel.UUID {
	return o.details.CustomerID
}

func (o *Order) CustomerEmail() string {
	return o.details.CustomerEmail
}

func (o *Order) Status() Status {
	return o.state.Status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.state.PaymentStatus
}

func (o *Order) InvoiceUnlocked() bool {
	return o.state.InvoiceUnlocked
}

func (o *Order) InvoiceGenerated() bool {
	return o.state.InvoiceGenerated
}

func (o *Order) CreatedAt() time.Time {
	return o.state.CreatedAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.state.UpdatedAt
}

// State returns a copy of the lifecycle state for persistence adapters.
func (o *Order) State() State {
	return o.state
}

// ChangeStatus records a validated transition.
//
// Reaching REFUNDED marks the payment refunded; reaching DELIVERED with an
// invoice already issued marks it paid.
func (o *Order) ChangeStatus(to Status, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	o.state.Status = to
	o.state.UpdatedAt = at.UTC()

	switch {
	case to == Refunded:
		o.state.PaymentStatus = PaymentRefunded
	case to == Delivered && o.state.InvoiceGenerated:
		o.state.PaymentStatus = PaymentPaid
	}

	return nil
}

// IsInvoiceEligible reports whether the order has reached PROCESSING_COMPLETED
// (and so READY_FOR_DELIVERY and later happy-path steps too).
func (o *Order) IsInvoiceEligible() bool {
	return o.state.Status.HasReached(ProcessingCompleted)
}

// UnlockInvoice flips invoice eligibility once. It reports whether the flag
// changed; unlocking an unlocked order is a no-op.
func (o *Order) UnlockInvoice(at time.Time) (bool, error) {
	if o.state.InvoiceUnlocked {
		return false, nil
	}
	if !o.IsInvoiceEligible() {
		return false, ErrInvoiceLocked
	}

	o.state.InvoiceUnlocked = true
	o.state.UpdatedAt = at.UTC()
	return true, nil
}

// GenerateInvoice moves invoiceGenerated from false to true exactly once. An
// order invoiced after delivery is paid at that point.
func (o *Order) GenerateInvoice(at time.Time) error {
	if o.state.Status == Cancelled || o.state.Status == Refunded {
		return errs.NewOrderAlreadyTerminalError("order", o.state.Status, actionGenerateInvoice)
	}
	if !o.state.InvoiceUnlocked {
		return ErrInvoiceLocked
	}
	if o.state.InvoiceGenerated {
		return ErrInvoiceAlreadyGenerated
	}

	o.state.InvoiceGenerated = true
	if o.state.Status == Delivered {
		o.state.PaymentStatus = PaymentPaid
	}
	o.state.UpdatedAt = at.UTC()
	return nil
}

// action names a non-status mutation in error messages.
type action string

const actionGenerateInvoice action = "INVOICE_GENERATED"

func (a action) String() string { return string(a) }

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d Details) error {
	if strings.TrimSpace(d.Number) == "" && o.id.Validate() == nil {
		d.Number = numberFromID(o.id)
	}
	d.Number = strings.ToUpper(strings.TrimSpace(d.Number))
	d.CustomerEmail = strings.TrimSpace(d.CustomerEmail)

	if err := errors.Join(
		validateNumber(d.Number),
		d.CustomerID.Validate(),
		validateEmail(d.CustomerEmail),
		d.PickupAddress.Validate(),
		d.DeliveryAddress.Validate(),
		d.PickupWindow.Validate(),
		d.DeliveryWindow.Validate(),
	); err != nil {
		return err
	}

	if d.DeliveryWindow.Start().Before(d.PickupWindow.End()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery window",
			fmt.Errorf("delivery window %s starts before pickup window %s ends", d.DeliveryWindow, d.PickupWindow),
		)
	}

	o.details = d
	return nil
}

func (o *Order) setState(s State) error {
	if err := errors.Join(s.Status.Validate(), s.PaymentStatus.Validate()); err != nil {
		return err
	}
	if s.InvoiceGenerated && !s.InvoiceUnlocked {
		return errs.NewValueIsInvalidErrorWithCause("invoice", errors.New("generated invoice must be unlocked"))
	}
	if s.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}

	o.state = s
	return nil
}

func validateNumber(number string) error {
	if !orderNumberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q does not match %s", number, orderNumberPattern))
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer email", err)
	}
	return nil
}

// numberFromID derives "LD-" followed by the first four id bytes in hex.
func numberFromID(id kernel.UUID) string {
	raw := id.Bytes()
	return fmt.Sprintf("LD-%X", raw[:4])
}
