package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// ShippingMethod enumerates how an order reaches the customer.
type ShippingMethod int

const (
	// MethodUnknown represents an invalid or undefined shipping method.
	MethodUnknown ShippingMethod = iota

	// Pickup means the customer collects at the store counter.
	Pickup

	// Delivery means the order is brought to the customer's address.
	Delivery

	// LockerPickup means drop-off at a partner locker; requires a locker
	// identifier and address.
	LockerPickup
)

func getShippingMethodStrings() map[ShippingMethod]string {
	return map[ShippingMethod]string{
		MethodUnknown: "UNKNOWN",
		Pickup:        "PICKUP",
		Delivery:      "DELIVERY",
		LockerPickup:  "LOCKER",
	}
}

// ShippingMethodFromString parses the wire form of a shipping method.
func ShippingMethodFromString(s string) (ShippingMethod, error) {
	switch s {
	case "PICKUP":
		return Pickup, nil
	case "DELIVERY":
		return Delivery, nil
	case "LOCKER":
		return LockerPickup, nil
	default:
		return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("shippingMethod",
			fmt.Errorf("%q is not a valid shipping method", s))
	}
}

// String returns the wire form of the method.
func (m ShippingMethod) String() string {
	if str, ok := getShippingMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects MethodUnknown and out-of-range values.
func (m ShippingMethod) Validate() error {
	switch m {
	case Pickup, Delivery, LockerPickup:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("shippingMethod",
			fmt.Errorf("%d is not a valid shipping method", m))
	}
}

// Shipping is a value object bundling the shipping method with the locker
// coordinates required by LockerPickup.
type Shipping struct {
	method        ShippingMethod
	lockerID      string
	lockerAddress string
}

// NewShipping creates a validated Shipping value. Locker id and address
// are required when, and only meaningful when, the method is LockerPickup.
func NewShipping(method ShippingMethod, lockerID, lockerAddress string) (Shipping, error) {
	if err := method.Validate(); err != nil {
		return Shipping{}, err
	}

	if method == LockerPickup {
		if lockerID == "" {
			return Shipping{}, errs.NewValueIsRequiredError("lockerID")
		}
		if lockerAddress == "" {
			return Shipping{}, errs.NewValueIsRequiredError("lockerAddress")
		}
	}

	return Shipping{
		method:        method,
		lockerID:      lockerID,
		lockerAddress: lockerAddress,
	}, nil
}

// Method returns the shipping method.
func (s Shipping) Method() ShippingMethod {
	return s.method
}

// LockerID returns the partner locker identifier, empty unless the method
// is LockerPickup.
func (s Shipping) LockerID() string {
	return s.lockerID
}

// LockerAddress returns the partner locker address, empty unless the
// method is LockerPickup.
func (s Shipping) LockerAddress() string {
	return s.lockerAddress
}
