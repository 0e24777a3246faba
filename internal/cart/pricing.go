package cart

import "github.com/shopspring/decimal"

const (
	FreeShippingThreshold = int64(499)
	ShippingFee           = int64(49)
)

var taxRate = decimal.RequireFromString("0.18")

// Totals are derived from the subtotal on every read and never stored.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ComputeTotals applies the shipping threshold and the 18% tax rounded half-up.
func ComputeTotals(subtotal int64) Totals {
	shipping := ShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
