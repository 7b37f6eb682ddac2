package handlers

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodie-backend/internal/models"
	"foodie-backend/internal/pricing"
)

func fakeCatalog(items ...models.MenuItem) menuItemResolver {
	byID := make(map[primitive.ObjectID]models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return func(_ context.Context, id primitive.ObjectID) (models.MenuItem, bool, error) {
		item, ok := byID[id]
		return item, ok, nil
	}
}

func validDeliveryInfo() createOrderDeliveryInfoRequest {
	return createOrderDeliveryInfoRequest{
		FullName: "Jane Doe",
		Phone:    "+1 234 567 8901",
		Address:  "123 Pizza Lane",
		City:     "Springfield",
		ZipCode:  "12345",
	}
}

func TestAssembleOrderEmptyItems(t *testing.T) {
	req := createOrderRequest{
		DeliveryInfo:  validDeliveryInfo(),
		PaymentMethod: "card",
	}

	resolved := 0
	resolve := func(_ context.Context, _ primitive.ObjectID) (models.MenuItem, bool, error) {
		resolved++
		return models.MenuItem{}, false, nil
	}

	_, err := assembleOrder(context.Background(), req, resolve)

	var emptyErr emptyOrderError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected emptyOrderError, got %v", err)
	}
	if resolved != 0 {
		t.Errorf("resolver called %d times for an empty order", resolved)
	}
}

func TestAssembleOrderUnknownItemAbortsWholeOrder(t *testing.T) {
	known := models.MenuItem{ID: primitive.NewObjectID(), Name: "Pizza", Price: 12.99}
	unknown := primitive.NewObjectID()

	req := createOrderRequest{
		Items: []createOrderItemRequest{
			{MenuItemID: known.ID.Hex(), Quantity: 1},
			{MenuItemID: unknown.Hex(), Quantity: 2},
		},
		DeliveryInfo:  validDeliveryInfo(),
		PaymentMethod: "card",
	}

	_, err := assembleOrder(context.Background(), req, fakeCatalog(known))

	var unknownErr unknownMenuItemError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected unknownMenuItemError, got %v", err)
	}
	if unknownErr.MenuItemID != unknown.Hex() {
		t.Errorf("error names item %s, want %s", unknownErr.MenuItemID, unknown.Hex())
	}
}

func TestAssembleOrderSnapshotsCatalogPrices(t *testing.T) {
	burger := models.MenuItem{ID: primitive.NewObjectID(), Name: "Burger", Price: 9.99, Image: "🍔"}

	req := createOrderRequest{
		Items: []createOrderItemRequest{
			{MenuItemID: burger.ID.Hex(), Quantity: 2},
		},
		DeliveryInfo:  validDeliveryInfo(),
		PaymentMethod: "card",
	}

	order, err := assembleOrder(context.Background(), req, fakeCatalog(burger))
	if err != nil {
		t.Fatalf("assembleOrder: %v", err)
	}

	if len(order.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(order.Items))
	}
	item := order.Items[0]
	if item.Name != "Burger" || item.Price != 9.99 || item.Quantity != 2 {
		t.Errorf("snapshot item = %+v", item)
	}
	if item.Image != "🍔" {
		t.Errorf("image = %q, want catalog image carried into the order", item.Image)
	}

	const tolerance = 1e-9
	if math.Abs(order.Subtotal-19.98) > tolerance {
		t.Errorf("subtotal = %v, want 19.98", order.Subtotal)
	}
	if math.Abs(order.Tax-1.5984) > tolerance {
		t.Errorf("tax = %v, want 1.5984", order.Tax)
	}
	if math.Abs(order.Total-24.5684) > tolerance {
		t.Errorf("total = %v, want 24.5684", order.Total)
	}
	if order.DeliveryFee != pricing.DeliveryFee {
		t.Errorf("deliveryFee = %v, want %v", order.DeliveryFee, pricing.DeliveryFee)
	}
}

func TestAssembleOrderInitialStatuses(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Name: "Pizza", Price: 12.99}

	tests := []struct {
		method      string
		wantPayment models.PaymentStatus
	}{
		{"cash", models.PaymentPending},
		{"card", models.PaymentCompleted},
		{"paypal", models.PaymentCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			req := createOrderRequest{
				Items:         []createOrderItemRequest{{MenuItemID: pizza.ID.Hex(), Quantity: 1}},
				DeliveryInfo:  validDeliveryInfo(),
				PaymentMethod: tt.method,
			}

			order, err := assembleOrder(context.Background(), req, fakeCatalog(pizza))
			if err != nil {
				t.Fatalf("assembleOrder: %v", err)
			}
			if order.OrderStatus != models.OrderPending {
				t.Errorf("orderStatus = %s, want pending", order.OrderStatus)
			}
			if order.PaymentStatus != tt.wantPayment {
				t.Errorf("paymentStatus = %s, want %s", order.PaymentStatus, tt.wantPayment)
			}
		})
	}
}

func TestAssembleOrderRejectsBadInput(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Name: "Pizza", Price: 12.99}

	tests := []struct {
		name string
		req  createOrderRequest
	}{
		{
			name: "unknown payment method",
			req: createOrderRequest{
				Items:         []createOrderItemRequest{{MenuItemID: pizza.ID.Hex(), Quantity: 1}},
				DeliveryInfo:  validDeliveryInfo(),
				PaymentMethod: "bitcoin",
			},
		},
		{
			name: "malformed menu item id",
			req: createOrderRequest{
				Items:         []createOrderItemRequest{{MenuItemID: "not-a-hex-id", Quantity: 1}},
				DeliveryInfo:  validDeliveryInfo(),
				PaymentMethod: "card",
			},
		},
		{
			name: "zero quantity",
			req: createOrderRequest{
				Items:         []createOrderItemRequest{{MenuItemID: pizza.ID.Hex(), Quantity: 0}},
				DeliveryInfo:  validDeliveryInfo(),
				PaymentMethod: "card",
			},
		},
		{
			name: "malformed user id",
			req: createOrderRequest{
				Items:         []createOrderItemRequest{{MenuItemID: pizza.ID.Hex(), Quantity: 1}},
				DeliveryInfo:  validDeliveryInfo(),
				PaymentMethod: "card",
				UserID:        "nope",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := assembleOrder(context.Background(), tt.req, fakeCatalog(pizza))
			var badReqErr badOrderRequestError
			if !errors.As(err, &badReqErr) {
				t.Fatalf("expected badOrderRequestError, got %v", err)
			}
		})
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	now := time.Now()
	id := newOrderID(now)

	if !strings.HasPrefix(id, "ORD-") {
		t.Fatalf("order id %q missing ORD- prefix", id)
	}
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("order id %q has %d parts, want 3", id, len(parts))
	}
	if len(parts[2]) != 9 {
		t.Errorf("suffix %q has length %d, want 9", parts[2], len(parts[2]))
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("suffix %q is not uppercased", parts[2])
	}
}

func TestNewOrderIDUniqueWithinSameMillisecond(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := newOrderID(now)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate order id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
