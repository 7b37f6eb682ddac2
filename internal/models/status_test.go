package models

import "testing"

func TestOrderStatusForwardChain(t *testing.T) {
	chain := []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered}
	for i := 0; i < len(chain)-1; i++ {
		if !chain[i].CanTransitionTo(chain[i+1]) {
			t.Errorf("expected %s -> %s to be legal", chain[i], chain[i+1])
		}
	}
}

func TestOrderStatusRejectsSkipsAndBackwardMoves(t *testing.T) {
	illegal := []struct {
		from, to OrderStatus
	}{
		{OrderPending, OrderPreparing},
		{OrderPending, OrderDelivered},
		{OrderConfirmed, OrderPending},
		{OrderDelivered, OrderPending},
		{OrderDelivered, OrderOutForDelivery},
		{OrderCancelled, OrderConfirmed},
	}
	for _, tt := range illegal {
		if tt.from.CanTransitionTo(tt.to) {
			t.Errorf("expected %s -> %s to be illegal", tt.from, tt.to)
		}
	}
}

func TestOrderStatusCancellation(t *testing.T) {
	for _, from := range []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery} {
		if !from.CanTransitionTo(OrderCancelled) {
			t.Errorf("expected %s -> cancelled to be legal", from)
		}
	}
	if OrderDelivered.CanTransitionTo(OrderCancelled) {
		t.Error("expected delivered -> cancelled to be illegal")
	}
	// Re-cancelling is idempotent, not an error.
	if !OrderCancelled.CanTransitionTo(OrderCancelled) {
		t.Error("expected cancelled -> cancelled to be legal")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !OrderDelivered.Terminal() || !OrderCancelled.Terminal() {
		t.Error("delivered and cancelled must be terminal")
	}
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery} {
		if s.Terminal() {
			t.Errorf("%s must not be terminal", s)
		}
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	legal := []struct {
		from, to PaymentStatus
	}{
		{PaymentPending, PaymentCompleted},
		{PaymentPending, PaymentFailed},
		{PaymentFailed, PaymentPending},
		{PaymentFailed, PaymentCompleted},
		{PaymentCompleted, PaymentCompleted},
	}
	for _, tt := range legal {
		if !tt.from.CanTransitionTo(tt.to) {
			t.Errorf("expected %s -> %s to be legal", tt.from, tt.to)
		}
	}

	illegal := []struct {
		from, to PaymentStatus
	}{
		{PaymentCompleted, PaymentPending},
		{PaymentCompleted, PaymentFailed},
	}
	for _, tt := range illegal {
		if tt.from.CanTransitionTo(tt.to) {
			t.Errorf("expected %s -> %s to be illegal", tt.from, tt.to)
		}
	}
}

func TestInitialPaymentStatus(t *testing.T) {
	if got := PaymentMethodCash.InitialPaymentStatus(); got != PaymentPending {
		t.Errorf("cash initial payment status = %s, want pending", got)
	}
	if got := PaymentMethodCard.InitialPaymentStatus(); got != PaymentCompleted {
		t.Errorf("card initial payment status = %s, want completed", got)
	}
	if got := PaymentMethodPaypal.InitialPaymentStatus(); got != PaymentCompleted {
		t.Errorf("paypal initial payment status = %s, want completed", got)
	}
}

func TestStatusValidation(t *testing.T) {
	if OrderStatus("shipped").Valid() {
		t.Error("unknown order status must be invalid")
	}
	if PaymentStatus("refunded").Valid() {
		t.Error("unknown payment status must be invalid")
	}
	if PaymentMethod("bitcoin").Valid() {
		t.Error("unknown payment method must be invalid")
	}
	if !PaymentMethodPaypal.Valid() {
		t.Error("paypal must be a valid payment method")
	}
}
