// Package cart mirrors the order totals on the client side of checkout. A
// Cart is an explicit value passed through pure operations; persistence
// goes through the Store port so callers decide where the cart lives.
//
// Prices are snapshotted into a line when the item is first added. The
// server re-resolves authoritative prices at order creation, so any drift
// between the displayed and charged total is bounded to the window between
// add-to-cart and checkout.
package cart

import (
	"foodie-backend/internal/pricing"
)

// Line is one cart entry, unique by MenuItemID.
type Line struct {
	MenuItemID  string  `json:"menuItemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}

// Cart holds the ordered lines. The zero value is an empty usable cart.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Item is the catalog data needed to add a line.
type Item struct {
	MenuItemID  string
	Name        string
	Description string
	UnitPrice   float64
}

// Add merges quantity into an existing line or appends a new one with the
// item's current price snapshotted. Quantities below 1 add nothing.
func (c Cart) Add(item Item, quantity int) Cart {
	if quantity < 1 {
		return c
	}

	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)

	for i := range lines {
		if lines[i].MenuItemID == item.MenuItemID {
			lines[i].Quantity += quantity
			return Cart{Lines: lines}
		}
	}

	return Cart{Lines: append(lines, Line{
		MenuItemID:  item.MenuItemID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		Quantity:    quantity,
	})}
}

// ChangeQuantity adjusts a line by delta. A line that reaches zero or below
// is removed entirely. Unknown ids are a no-op.
func (c Cart) ChangeQuantity(menuItemID string, delta int) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.MenuItemID == menuItemID {
			line.Quantity += delta
			if line.Quantity < 1 {
				continue
			}
		}
		lines = append(lines, line)
	}
	return Cart{Lines: lines}
}

// Remove drops the line for menuItemID regardless of quantity.
func (c Cart) Remove(menuItemID string) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.MenuItemID != menuItemID {
			lines = append(lines, line)
		}
	}
	return Cart{Lines: lines}
}

// Clear empties the cart, typically after a successful checkout.
func (c Cart) Clear() Cart {
	return Cart{}
}

// ItemCount is the total quantity across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Totals prices the cart through the same engine order assembly uses.
func (c Cart) Totals() pricing.Totals {
	lines := make([]pricing.Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, pricing.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	return pricing.ComputeTotals(lines, pricing.DeliveryFee, pricing.TaxRate)
}
