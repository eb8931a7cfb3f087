package product

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// StockStatus describes the availability of a catalog product on the
// storefront. It is set by the operator, not derived from a counter.
type StockStatus int

const (
	// StockUnknown represents an invalid or undefined stock status.
	StockUnknown StockStatus = iota

	// InStock means the product can be ordered freely.
	InStock

	// LowStock means the product is running out and shown with a warning.
	LowStock

	// OutOfStock means the product is listed but cannot be ordered.
	OutOfStock
)

func getStockStatusStrings() map[StockStatus]string {
	return map[StockStatus]string{
		StockUnknown: "UNKNOWN",
		InStock:      "IN_STOCK",
		LowStock:     "LOW_STOCK",
		OutOfStock:   "OUT_OF_STOCK",
	}
}

// StockStatusFromString parses the wire form of a stock status.
func StockStatusFromString(s string) (StockStatus, error) {
	switch s {
	case "IN_STOCK":
		return InStock, nil
	case "LOW_STOCK":
		return LowStock, nil
	case "OUT_OF_STOCK":
		return OutOfStock, nil
	default:
		return StockUnknown, errs.NewValueIsInvalidErrorWithCause("stockStatus",
			fmt.Errorf("%q is not a valid stock status", s))
	}
}

// String returns the wire form of the stock status.
func (s StockStatus) String() string {
	if str, ok := getStockStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects StockUnknown and out-of-range values.
func (s StockStatus) Validate() error {
	switch s {
	case InStock, LowStock, OutOfStock:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stockStatus",
			fmt.Errorf("%d is not a valid stock status", s))
	}
}
