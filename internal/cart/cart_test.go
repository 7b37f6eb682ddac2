package cart

import (
	"math"
	"testing"

	"foodie-backend/internal/pricing"
)

var (
	pizza  = Item{MenuItemID: "a1", Name: "Pizza", Description: "Delicious cheesy pizza", UnitPrice: 12.99}
	burger = Item{MenuItemID: "b2", Name: "Burger", Description: "Classic beef burger", UnitPrice: 9.99}
)

func TestAddAggregatesByMenuItem(t *testing.T) {
	c := Cart{}.Add(pizza, 1).Add(burger, 1).Add(pizza, 2)

	if len(c.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(c.Lines))
	}
	if c.Lines[0].MenuItemID != "a1" || c.Lines[0].Quantity != 3 {
		t.Errorf("pizza line = %+v, want quantity 3", c.Lines[0])
	}
	if c.ItemCount() != 4 {
		t.Errorf("item count = %d, want 4", c.ItemCount())
	}
}

func TestAddSnapshotsPriceAtAddTime(t *testing.T) {
	c := Cart{}.Add(pizza, 1)

	repriced := pizza
	repriced.UnitPrice = 15.99
	c = c.Add(repriced, 1)

	if len(c.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(c.Lines))
	}
	if c.Lines[0].UnitPrice != 12.99 {
		t.Errorf("unit price = %v, want add-time snapshot 12.99", c.Lines[0].UnitPrice)
	}
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	c := Cart{}.Add(pizza, 0).Add(burger, -2)
	if len(c.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(c.Lines))
	}
}

func TestChangeQuantityRemovesLineAtZero(t *testing.T) {
	c := Cart{}.Add(pizza, 2).Add(burger, 1)

	c = c.ChangeQuantity("a1", -1)
	if c.Lines[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", c.Lines[0].Quantity)
	}

	c = c.ChangeQuantity("a1", -1)
	if len(c.Lines) != 1 || c.Lines[0].MenuItemID != "b2" {
		t.Errorf("expected pizza line removed, got %+v", c.Lines)
	}

	// Unknown id is a no-op.
	c = c.ChangeQuantity("zz", -5)
	if len(c.Lines) != 1 {
		t.Errorf("expected unknown id to change nothing, got %+v", c.Lines)
	}
}

func TestRemoveAndClear(t *testing.T) {
	c := Cart{}.Add(pizza, 3).Add(burger, 1)

	c = c.Remove("a1")
	if len(c.Lines) != 1 {
		t.Fatalf("got %d lines after remove, want 1", len(c.Lines))
	}

	c = c.Clear()
	if len(c.Lines) != 0 || c.ItemCount() != 0 {
		t.Errorf("expected empty cart after clear, got %+v", c)
	}
}

func TestTotalsMatchPricingEngine(t *testing.T) {
	c := Cart{}.Add(burger, 2)

	got := c.Totals()
	want := pricing.ComputeTotals(
		[]pricing.Line{{UnitPrice: 9.99, Quantity: 2}},
		pricing.DeliveryFee, pricing.TaxRate,
	)

	if got != want {
		t.Errorf("cart totals = %+v, pricing engine says %+v", got, want)
	}
	if math.Abs(got.Total-24.5684) > 1e-9 {
		t.Errorf("total = %v, want 24.5684", got.Total)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Empty storage loads an empty cart.
	c, err := store.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", c)
	}

	c = c.Add(pizza, 2).Add(burger, 1)
	if err := store.Save(c); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Lines) != 2 || reloaded.ItemCount() != 3 {
		t.Errorf("reloaded cart = %+v", reloaded)
	}
	if reloaded.Totals() != c.Totals() {
		t.Errorf("totals changed across reload: %+v vs %+v", reloaded.Totals(), c.Totals())
	}
}
