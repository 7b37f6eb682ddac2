package handlers

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodie-backend/internal/models"
	"foodie-backend/internal/pricing"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type createOrderDeliveryInfoRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	Instructions string `json:"instructions"`
}

type createOrderRequest struct {
	Items         []createOrderItemRequest       `json:"items" binding:"required"`
	DeliveryInfo  createOrderDeliveryInfoRequest `json:"deliveryInfo" binding:"required"`
	PaymentMethod string                         `json:"paymentMethod" binding:"required"`
	UserID        string                         `json:"userId"`
}

/* =========================
   TYPED ERRORS
========================= */

type emptyOrderError struct{}

func (emptyOrderError) Error() string {
	return "order must have at least one item"
}

type unknownMenuItemError struct {
	MenuItemID string
}

func (e unknownMenuItemError) Error() string {
	return fmt.Sprintf("menu item %s not found", e.MenuItemID)
}

type badOrderRequestError struct {
	Message string
}

func (e badOrderRequestError) Error() string {
	return e.Message
}

/* =========================
   ASSEMBLY
========================= */

// menuItemResolver looks a catalog entry up by id. The HTTP handler binds it
// to the menu_items collection; tests inject a fake.
type menuItemResolver func(ctx context.Context, id primitive.ObjectID) (models.MenuItem, bool, error)

// assembleOrder turns a checkout request into a persistable Order. Every
// menu item id must resolve or the whole operation fails: no partial order
// is ever produced. Prices always come from the resolver, never from the
// client.
func assembleOrder(ctx context.Context, req createOrderRequest, resolve menuItemResolver) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, emptyOrderError{}
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return models.Order{}, badOrderRequestError{Message: "invalid payment method"}
	}

	var user *primitive.ObjectID
	if strings.TrimSpace(req.UserID) != "" {
		id, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return models.Order{}, badOrderRequestError{Message: "invalid userId"}
		}
		user = &id
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	lines := make([]pricing.Line, 0, len(req.Items))

	for _, line := range req.Items {
		if line.Quantity < 1 {
			return models.Order{}, badOrderRequestError{Message: "quantity must be at least 1"}
		}

		menuItemID, err := primitive.ObjectIDFromHex(line.MenuItemID)
		if err != nil {
			return models.Order{}, badOrderRequestError{Message: "invalid menuItemId"}
		}

		menuItem, found, err := resolve(ctx, menuItemID)
		if err != nil {
			return models.Order{}, err
		}
		if !found {
			return models.Order{}, unknownMenuItemError{MenuItemID: line.MenuItemID}
		}

		items = append(items, models.OrderItem{
			MenuItem: menuItem.ID,
			Name:     menuItem.Name,
			Image:    menuItem.Image,
			Quantity: line.Quantity,
			Price:    menuItem.Price,
		})
		lines = append(lines, pricing.Line{UnitPrice: menuItem.Price, Quantity: line.Quantity})
	}

	totals := pricing.ComputeTotals(lines, pricing.DeliveryFee, pricing.TaxRate)
	now := time.Now()

	return models.Order{
		OrderID:       newOrderID(now),
		User:          user,
		Items:         items,
		Subtotal:      totals.Subtotal,
		DeliveryFee:   pricing.DeliveryFee,
		Tax:           totals.Tax,
		Total:         totals.Total,
		DeliveryInfo:  models.DeliveryInfo(req.DeliveryInfo),
		PaymentMethod: method,
		PaymentStatus: method.InitialPaymentStatus(),
		OrderStatus:   models.OrderPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderID builds a human-readable identifier: ORD-<millis>-<9 random
// alphanumerics>. Uniqueness is statistical; the unique index on orderId is
// the backstop.
func newOrderID(now time.Time) string {
	suffix := make([]byte, 9)
	if _, err := rand.Read(suffix); err != nil {
		// nanotime fallback keeps checkout working if the entropy source fails
		return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + strings.ToUpper(strconv.FormatInt(now.UnixNano()%1e9, 36))
	}
	for i, b := range suffix {
		suffix[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}
