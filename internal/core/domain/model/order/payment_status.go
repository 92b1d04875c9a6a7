package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// PaymentStatus tracks the customer's payment for an order.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:  "PENDING",
	PaymentPaid:     "PAID",
	PaymentRefunded: "REFUNDED",
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for ps, name := range paymentStatusNames {
		if name == normalized {
			return ps, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid payment status", s))
}

func (p PaymentStatus) String() string {
	if name, ok := paymentStatusNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

func (p PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}
