package http

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs validator/v10 into echo. The rules live in the
// validate tags the OpenAPI document attaches to the generated bodies.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func addressFrom(a servers.Address) (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.City, a.PostalCode)
}

func windowFrom(w servers.TimeWindow) (kernel.TimeWindow, error) {
	return kernel.NewTimeWindow(w.Start, w.End)
}

// orderDetailsFrom maps a NewOrder body. Customers may omit customer_id and
// always order for themselves; staff must name the customer.
func orderDetailsFrom(body servers.PlaceOrderJSONRequestBody, by actor.Actor) (order.Details, error) {
	customerID := by.ID()
	if body.CustomerId != nil {
		id, err := kernel.UUIDFromBytes(body.CustomerId[:])
		if err != nil {
			return order.Details{}, errs.NewValueIsInvalidErrorWithCause("customer_id", err)
		}
		customerID = id
	} else if by.Role() != actor.Customer {
		return order.Details{}, errs.NewValueIsRequiredError("customer_id")
	}

	pickup, pickupErr := addressFrom(body.PickupAddress)
	delivery, deliveryErr := addressFrom(body.DeliveryAddress)
	pickupWindow, pickupWindowErr := windowFrom(body.PickupWindow)
	deliveryWindow, deliveryWindowErr := windowFrom(body.DeliveryWindow)
	if err := errors.Join(pickupErr, deliveryErr, pickupWindowErr, deliveryWindowErr); err != nil {
		return order.Details{}, err
	}

	return order.Details{
		CustomerID:      customerID,
		CustomerEmail:   string(body.CustomerEmail),
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PickupWindow:    pickupWindow,
		DeliveryWindow:  deliveryWindow,
	}, nil
}

// statusChangeFrom parses the target and expected statuses. A photo with a
// blank URL is passed on as evidence so the photo gate reports it.
func statusChangeFrom(body servers.ChangeOrderStatusJSONRequestBody) (order.Status, *order.Status, *assignment.Evidence, error) {
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return order.Unknown, nil, nil, err
	}

	var expected *order.Status
	if body.ExpectedStatus != nil && *body.ExpectedStatus != "" {
		s, err := order.ParseStatus(*body.ExpectedStatus)
		if err != nil {
			return order.Unknown, nil, nil, err
		}
		expected = &s
	}

	var evidence *assignment.Evidence
	if body.Photo != nil {
		evidence = &assignment.Evidence{URL: body.Photo.Url, Description: deref(body.Photo.Description)}
	}

	return target, expected, evidence, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
