package pricing

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []Line
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:         "single line",
			lines:        []Line{{UnitPrice: 9.99, Quantity: 2}},
			wantSubtotal: 19.98,
			wantTax:      1.5984,
			wantTotal:    24.5684,
		},
		{
			name: "multiple lines",
			lines: []Line{
				{UnitPrice: 12.99, Quantity: 1},
				{UnitPrice: 4.99, Quantity: 2},
				{UnitPrice: 2.99, Quantity: 3},
			},
			wantSubtotal: 31.94,
			wantTax:      2.5552,
			wantTotal:    37.4852,
		},
		{
			name:         "free item still charges delivery",
			lines:        []Line{{UnitPrice: 0, Quantity: 5}},
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    DeliveryFee,
		},
		{
			name:         "no lines",
			lines:        nil,
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    DeliveryFee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, DeliveryFee, TaxRate)
			if !almostEqual(got.Subtotal, tt.wantSubtotal) {
				t.Errorf("subtotal = %v, want %v", got.Subtotal, tt.wantSubtotal)
			}
			if !almostEqual(got.Tax, tt.wantTax) {
				t.Errorf("tax = %v, want %v", got.Tax, tt.wantTax)
			}
			if !almostEqual(got.Total, tt.wantTotal) {
				t.Errorf("total = %v, want %v", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestTotalAlwaysRecomputable(t *testing.T) {
	lines := []Line{
		{UnitPrice: 0.01, Quantity: 1},
		{UnitPrice: 999.99, Quantity: 7},
		{UnitPrice: 5.55, Quantity: 3},
	}
	got := ComputeTotals(lines, DeliveryFee, TaxRate)

	if !almostEqual(got.Total, got.Subtotal+DeliveryFee+got.Subtotal*TaxRate) {
		t.Errorf("total %v not recomputable from subtotal %v", got.Total, got.Subtotal)
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	lines := []Line{{UnitPrice: 7.25, Quantity: 4}}
	first := ComputeTotals(lines, DeliveryFee, TaxRate)
	for i := 0; i < 100; i++ {
		if ComputeTotals(lines, DeliveryFee, TaxRate) != first {
			t.Fatal("ComputeTotals is not deterministic")
		}
	}
}
