package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single menu item entry within an order. Name, price and
// image are snapshotted from the catalog at order-creation time so
// historical orders are unaffected by later catalog changes and the
// confirmation can render without a second lookup.
type OrderItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

// DeliveryInfo captures the contact and address snapshot for an order.
// Immutable after creation.
type DeliveryInfo struct {
	FullName     string `bson:"fullName" json:"fullName"`
	Phone        string `bson:"phone" json:"phone"`
	Address      string `bson:"address" json:"address"`
	City         string `bson:"city" json:"city"`
	ZipCode      string `bson:"zipCode" json:"zipCode"`
	Instructions string `bson:"instructions" json:"instructions"`
}

// Order is the persisted order document. Only the status fields change after
// creation; orders are never physically deleted, cancellation is a status.
type Order struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OrderID       string              `bson:"orderId" json:"orderId"`
	User          *primitive.ObjectID `bson:"user" json:"user"`
	Items         []OrderItem         `bson:"items" json:"items"`
	Subtotal      float64             `bson:"subtotal" json:"subtotal"`
	DeliveryFee   float64             `bson:"deliveryFee" json:"deliveryFee"`
	Tax           float64             `bson:"tax" json:"tax"`
	Total         float64             `bson:"total" json:"total"`
	DeliveryInfo  DeliveryInfo        `bson:"deliveryInfo" json:"deliveryInfo"`
	PaymentMethod PaymentMethod       `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus PaymentStatus       `bson:"paymentStatus" json:"paymentStatus"`
	OrderStatus   OrderStatus         `bson:"orderStatus" json:"orderStatus"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}
