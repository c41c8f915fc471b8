// internal/pricing/pricing.go
package pricing

import (
	"errors"
	"strings"
)

// Flat courier tariff. Orders delivered inside Dhaka get the discounted rate;
// everything else pays the outside rate. The match is a literal
// case-insensitive substring test against the customer-entered delivery area,
// kept bug-for-bug compatible with the storefront this replaces.
const (
	CourierChargeDhaka   = 100.0
	CourierChargeOutside = 200.0
)

var ErrInvalidCharge = errors.New("invalid unit price or quantity")

// ComputeCharges returns the courier charge and total amount for an order
// line. It is deterministic and has no side effects: the same inputs always
// produce the same charges regardless of wall-clock time.
func ComputeCharges(unitPrice float64, quantity int, deliveryArea string) (courierCharge, totalAmount float64, err error) {
	if unitPrice < 0 {
		return 0, 0, ErrInvalidCharge
	}
	if quantity < 1 {
		return 0, 0, ErrInvalidCharge
	}

	courierCharge = CourierChargeOutside
	if strings.Contains(strings.ToLower(deliveryArea), "dhaka") {
		courierCharge = CourierChargeDhaka
	}

	totalAmount = unitPrice*float64(quantity) + courierCharge
	return courierCharge, totalAmount, nil
}
