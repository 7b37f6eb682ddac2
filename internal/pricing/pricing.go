// Package pricing computes order totals. It is the single source of truth
// for the subtotal/tax/total formula: order assembly on the server and cart
// reconciliation on the client side both go through ComputeTotals so the
// two can never disagree on the math.
package pricing

// Fixed pricing parameters. The delivery fee is flat, not distance based.
const (
	DeliveryFee = 2.99
	TaxRate     = 0.08
)

// Line is a priced quantity, the minimal input ComputeTotals needs.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Totals is the result of pricing a set of lines.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals prices the given lines. Pure and deterministic; rejecting
// negative quantities or prices is the caller's job.
func ComputeTotals(lines []Line, deliveryFee, taxRate float64) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + deliveryFee + tax,
	}
}
