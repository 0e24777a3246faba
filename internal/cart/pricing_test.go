package cart

import (
	"testing"
)

func TestComputeTotalsScenarios(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     Totals
	}{
		{name: "free shipping", subtotal: 600, want: Totals{Subtotal: 600, Shipping: 0, Tax: 108, Total: 708}},
		{name: "paid shipping", subtotal: 300, want: Totals{Subtotal: 300, Shipping: 49, Tax: 54, Total: 403}},
		{name: "threshold", subtotal: 499, want: Totals{Subtotal: 499, Shipping: 0, Tax: 90, Total: 589}},
		{name: "just below", subtotal: 498, want: Totals{Subtotal: 498, Shipping: 49, Tax: 90, Total: 637}},
		{name: "half rounds up", subtotal: 25, want: Totals{Subtotal: 25, Shipping: 49, Tax: 5, Total: 79}},
		{name: "empty", subtotal: 0, want: Totals{Shipping: 49, Total: 49}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotals(tt.subtotal); got != tt.want {
				t.Fatalf("ComputeTotals(%d) = %+v, want %+v", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestComputeTotalsProperties(t *testing.T) {
	for subtotal := int64(0); subtotal <= 100000; subtotal++ {
		got := ComputeTotals(subtotal)
		wantShipping := int64(49)
		if subtotal >= 499 {
			wantShipping = 0
		}
		wantTax := (subtotal*18 + 50) / 100
		if got.Shipping != wantShipping || got.Tax != wantTax || got.Total != subtotal+wantShipping+wantTax {
			t.Fatalf("subtotal %d produced %+v", subtotal, got)
		}
	}
}
