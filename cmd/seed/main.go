// Seeds the database with sample restaurants and menu items so the
// storefront has something to serve. Existing catalog data is dropped.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodie-backend/internal/config"
	"foodie-backend/internal/database"
	"foodie-backend/internal/models"
)

var restaurants = []models.Restaurant{
	{Name: "Burger King", Cuisine: "American", Rating: 4.6, DeliveryTime: "20-25 min", Image: "🍔", Address: "456 Oak Ave", Phone: "+1 234 567 8902", IsActive: true},
	{Name: "McDonald's", Cuisine: "American", Rating: 4.7, DeliveryTime: "15-20 min", Image: "🍔", Address: "789 Main St", Phone: "+1 234 567 8903", IsActive: true},
	{Name: "Domino's", Cuisine: "Italian", Rating: 4.8, DeliveryTime: "25-30 min", Image: "🍕", Address: "123 Pizza Lane", Phone: "+1 234 567 8901", IsActive: true},
}

var menuItems = []models.MenuItem{
	{Name: "French Fries", Description: "Crispy golden french fries", Price: 4.99, Category: "sides", Image: "🍟", IsPopular: true, IsAvailable: true},
	{Name: "Coke", Description: "Refreshing cola drink", Price: 2.99, Category: "drinks", Image: "🥤", IsPopular: true, IsAvailable: true},
	{Name: "Pizza", Description: "Delicious cheesy pizza", Price: 12.99, Category: "pizza", Image: "🍕", IsPopular: true, IsAvailable: true},
	{Name: "Burger", Description: "Classic beef burger with all the fixings", Price: 9.99, Category: "burger", Image: "🍔", IsPopular: true, IsAvailable: true},
}

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(config.AppEnv.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Collection("restaurants").Drop(ctx); err != nil {
		log.Fatal("drop restaurants:", err)
	}
	if err := db.Collection("menu_items").Drop(ctx); err != nil {
		log.Fatal("drop menu_items:", err)
	}

	now := time.Now()

	restaurantDocs := make([]interface{}, 0, len(restaurants))
	restaurantIDs := make([]primitive.ObjectID, 0, len(restaurants))
	for _, r := range restaurants {
		r.ID = primitive.NewObjectID()
		r.CreatedAt = now
		r.UpdatedAt = now
		restaurantDocs = append(restaurantDocs, r)
		restaurantIDs = append(restaurantIDs, r.ID)
	}
	if _, err := db.Collection("restaurants").InsertMany(ctx, restaurantDocs); err != nil {
		log.Fatal("insert restaurants:", err)
	}
	log.Printf("seeded %d restaurants", len(restaurantDocs))

	menuItemDocs := make([]interface{}, 0, len(menuItems))
	for i, m := range menuItems {
		m.CreatedAt = now
		m.UpdatedAt = now
		restaurant := restaurantIDs[i%len(restaurantIDs)]
		m.Restaurant = &restaurant
		menuItemDocs = append(menuItemDocs, m)
	}
	if _, err := db.Collection("menu_items").InsertMany(ctx, menuItemDocs); err != nil {
		log.Fatal("insert menu items:", err)
	}
	log.Printf("seeded %d menu items", len(menuItemDocs))

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureMenuItemIndexes(db); err != nil {
		log.Printf("menu item index warning: %v", err)
	}
}
