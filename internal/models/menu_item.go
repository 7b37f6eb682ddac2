package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItemCategories is the accepted set of menu categories.
var MenuItemCategories = []string{"pizza", "burger", "pasta", "sushi", "dessert", "drinks", "sides", "other"}

// MenuItem is a catalog entry. The order core only reads it; prices on
// existing orders never change when the catalog does.
type MenuItem struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description" json:"description"`
	Price       float64             `bson:"price" json:"price"`
	Category    string              `bson:"category" json:"category"`
	Image       string              `bson:"image" json:"image"`
	ImageURL    string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Restaurant  *primitive.ObjectID `bson:"restaurant" json:"restaurant"`
	IsAvailable bool                `bson:"isAvailable" json:"isAvailable"`
	IsPopular   bool                `bson:"isPopular" json:"isPopular"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func ValidMenuItemCategory(category string) bool {
	for _, c := range MenuItemCategories {
		if c == category {
			return true
		}
	}
	return false
}
