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

func GetRestaurants(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /restaurants"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("restaurants").Find(ctx, bson.M{"isActive": bson.M{"$ne": false}}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		restaurants := make([]models.Restaurant, 0)
		if err := cursor.All(ctx, &restaurants); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d restaurants", route, len(restaurants))
		respondData(c, http.StatusOK, restaurants)
	}
}

func GetRestaurant(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /restaurants/:id"
		defer handlePanic(c, route)

		restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var restaurant models.Restaurant
		if err := db.Collection("restaurants").FindOne(ctx, bson.M{"_id": restaurantID}).Decode(&restaurant); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Restaurant not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		respondData(c, http.StatusOK, restaurant)
	}
}

type restaurantRequest struct {
	Name         string  `json:"name" binding:"required"`
	Cuisine      string  `json:"cuisine" binding:"required"`
	Rating       float64 `json:"rating" binding:"min=0,max=5"`
	DeliveryTime string  `json:"deliveryTime" binding:"required"`
	Image        string  `json:"image"`
	ImageURL     string  `json:"imageUrl"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
}

func CreateRestaurant(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /restaurants"
		defer handlePanic(c, route)

		var req restaurantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		now := time.Now()
		restaurant := models.Restaurant{
			Name:         strings.TrimSpace(req.Name),
			Cuisine:      req.Cuisine,
			Rating:       req.Rating,
			DeliveryTime: req.DeliveryTime,
			Image:        req.Image,
			ImageURL:     req.ImageURL,
			Address:      req.Address,
			Phone:        req.Phone,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("restaurants").InsertOne(ctx, restaurant)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			restaurant.ID = id
		}

		respondData(c, http.StatusCreated, restaurant)
	}
}

func UpdateRestaurant(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /restaurants/:id"
		defer handlePanic(c, route)

		restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req restaurantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		update := bson.M{
			"name":         strings.TrimSpace(req.Name),
			"cuisine":      req.Cuisine,
			"rating":       req.Rating,
			"deliveryTime": req.DeliveryTime,
			"image":        req.Image,
			"imageUrl":     req.ImageURL,
			"address":      req.Address,
			"phone":        req.Phone,
			"updatedAt":    time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var restaurant models.Restaurant
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := db.Collection("restaurants").FindOneAndUpdate(ctx, bson.M{"_id": restaurantID}, bson.M{"$set": update}, opts).Decode(&restaurant); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Restaurant not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		respondData(c, http.StatusOK, restaurant)
	}
}

// DeleteRestaurant is a soft delete: it only flips isActive.
func DeleteRestaurant(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /restaurants/:id"
		defer handlePanic(c, route)

		restaurantID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("restaurants").UpdateByID(ctx, restaurantID, bson.M{
			"$set": bson.M{"isActive": false, "updatedAt": time.Now()},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "Restaurant not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Restaurant deleted"})
	}
}
