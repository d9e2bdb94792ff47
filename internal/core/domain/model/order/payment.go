package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// PaymentMethod is how the customer settles the order at hand-off.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is settled in cash at delivery.
	PaymentCash

	// PaymentQR is settled through a QR transfer, verified at delivery.
	PaymentQR
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "Unknown",
		PaymentCash:    "Cash",
		PaymentQR:      "QR",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash: "Cash",
		PaymentQR:   "QR",
	}
}

// PaymentMethodFromString parses a payment method name ("Cash" or "QR").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, name := range getValidPaymentMethodStrings() {
		if name == s {
			return m, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
