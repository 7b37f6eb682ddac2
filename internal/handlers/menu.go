package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodie-backend/internal/models"
)

/*
GET /menu
- filters: category, restaurant, popular, search (name/description, case-insensitive)
- pagination only when page + limit are both present
*/
func GetMenuItems(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /menu"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := bson.M{
			"isAvailable": bson.M{"$ne": false},
		}

		if category := strings.TrimSpace(c.Query("category")); category != "" && category != "all" {
			filter["category"] = category
		}

		if restaurant := strings.TrimSpace(c.Query("restaurant")); restaurant != "" {
			restaurantID, err := primitive.ObjectIDFromHex(restaurant)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid restaurant id")
				return
			}
			filter["restaurant"] = restaurantID
		}

		if c.Query("popular") == "true" {
			filter["isPopular"] = true
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"description": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "isPopular", Value: -1}, {Key: "createdAt", Value: -1}})

		if pageStr, limitStr := c.Query("page"), c.Query("limit"); pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			findOptions.SetSkip((page - 1) * limit).SetLimit(limit)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("menu_items").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		menuItems := make([]models.MenuItem, 0)
		if err := cursor.All(ctx, &menuItems); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d menu items", route, len(menuItems))
		respondData(c, http.StatusOK, menuItems)
	}
}

func GetMenuItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /menu/:id"
		defer handlePanic(c, route)

		menuItemID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var menuItem models.MenuItem
		if err := db.Collection("menu_items").FindOne(ctx, bson.M{"_id": menuItemID}).Decode(&menuItem); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Menu item not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		respondData(c, http.StatusOK, menuItem)
	}
}

type menuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	ImageURL    string  `json:"imageUrl"`
	Restaurant  string  `json:"restaurant"`
	IsAvailable *bool   `json:"isAvailable"`
	IsPopular   bool    `json:"isPopular"`
}

func CreateMenuItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /menu"
		defer handlePanic(c, route)

		var req menuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if !models.ValidMenuItemCategory(req.Category) {
			respondWithError(c, http.StatusBadRequest, route, "invalid category")
			return
		}

		var restaurant *primitive.ObjectID
		if strings.TrimSpace(req.Restaurant) != "" {
			id, err := primitive.ObjectIDFromHex(req.Restaurant)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid restaurant id")
				return
			}
			restaurant = &id
		}

		now := time.Now()
		menuItem := models.MenuItem{
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Image:       req.Image,
			ImageURL:    req.ImageURL,
			Restaurant:  restaurant,
			IsAvailable: true,
			IsPopular:   req.IsPopular,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if req.IsAvailable != nil {
			menuItem.IsAvailable = *req.IsAvailable
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("menu_items").InsertOne(ctx, menuItem)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			menuItem.ID = id
		}

		respondData(c, http.StatusCreated, menuItem)
	}
}

func UpdateMenuItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /menu/:id"
		defer handlePanic(c, route)

		menuItemID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req menuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if !models.ValidMenuItemCategory(req.Category) {
			respondWithError(c, http.StatusBadRequest, route, "invalid category")
			return
		}

		update := bson.M{
			"name":        strings.TrimSpace(req.Name),
			"description": req.Description,
			"price":       req.Price,
			"category":    req.Category,
			"image":       req.Image,
			"imageUrl":    req.ImageURL,
			"isPopular":   req.IsPopular,
			"updatedAt":   time.Now(),
		}
		if req.IsAvailable != nil {
			update["isAvailable"] = *req.IsAvailable
		}
		if strings.TrimSpace(req.Restaurant) != "" {
			restaurantID, err := primitive.ObjectIDFromHex(req.Restaurant)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid restaurant id")
				return
			}
			update["restaurant"] = restaurantID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var menuItem models.MenuItem
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := db.Collection("menu_items").FindOneAndUpdate(ctx, bson.M{"_id": menuItemID}, bson.M{"$set": update}, opts).Decode(&menuItem); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Menu item not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		respondData(c, http.StatusOK, menuItem)
	}
}

// DeleteMenuItem only flips the availability flag so existing orders keep
// their references intact.
func DeleteMenuItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /menu/:id"
		defer handlePanic(c, route)

		menuItemID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("menu_items").UpdateByID(ctx, menuItemID, bson.M{
			"$set": bson.M{"isAvailable": false, "updatedAt": time.Now()},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "Menu item not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted"})
	}
}
