package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodie-backend/internal/models"
)

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		resolve := func(ctx context.Context, id primitive.ObjectID) (models.MenuItem, bool, error) {
			var menuItem models.MenuItem
			err := db.Collection("menu_items").FindOne(ctx, bson.M{"_id": id}).Decode(&menuItem)
			if err == mongo.ErrNoDocuments {
				return models.MenuItem{}, false, nil
			}
			if err != nil {
				return models.MenuItem{}, false, err
			}
			return menuItem, true, nil
		}

		order, err := assembleOrder(ctx, req, resolve)
		if err != nil {
			var emptyErr emptyOrderError
			var unknownErr unknownMenuItemError
			var badReqErr badOrderRequestError
			switch {
			case errors.As(err, &emptyErr):
				respondWithError(c, http.StatusBadRequest, route, "order must have at least one item")
			case errors.As(err, &unknownErr):
				respondWithError(c, http.StatusBadRequest, route, unknownErr.Error())
			case errors.As(err, &badReqErr):
				respondWithError(c, http.StatusBadRequest, route, badReqErr.Message)
			default:
				respondWithError(c, http.StatusInternalServerError, route, "db error")
			}
			return
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		log.Printf("[%s] order %s created, total %.2f", route, order.OrderID, order.Total)
		respondDataMessage(c, http.StatusCreated, order, "Order placed successfully")
	}
}

/* =========================
   READ SIDE
========================= */

func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := bson.M{}
		if userID := c.Query("userId"); userID != "" {
			id, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid userId")
				return
			}
			filter["user"] = id
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

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

		cursor, err := db.Collection("orders").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		respondData(c, http.StatusOK, orders)
	}
}

func GetOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Order not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		respondData(c, http.StatusOK, order)
	}
}

/* =========================
   STATUS UPDATE
========================= */

type updateOrderStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

// UpdateOrderStatus applies a partial status update. Both axes are guarded
// by the transition tables in models; an illegal move is rejected without
// touching the document.
func UpdateOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/status"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}
		if req.OrderStatus == "" && req.PaymentStatus == "" {
			respondWithError(c, http.StatusBadRequest, route, "orderStatus or paymentStatus is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Order not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		update := bson.M{"updatedAt": time.Now()}

		if req.OrderStatus != "" {
			next := models.OrderStatus(req.OrderStatus)
			if !next.Valid() {
				respondWithError(c, http.StatusBadRequest, route, "invalid orderStatus")
				return
			}
			if !order.OrderStatus.CanTransitionTo(next) {
				transitionErr := models.InvalidTransitionError{
					Field: "orderStatus",
					From:  string(order.OrderStatus),
					To:    string(next),
				}
				respondWithError(c, http.StatusConflict, route, transitionErr.Error())
				return
			}
			update["orderStatus"] = next
			order.OrderStatus = next
		}

		if req.PaymentStatus != "" {
			next := models.PaymentStatus(req.PaymentStatus)
			if !next.Valid() {
				respondWithError(c, http.StatusBadRequest, route, "invalid paymentStatus")
				return
			}
			if !order.PaymentStatus.CanTransitionTo(next) {
				transitionErr := models.InvalidTransitionError{
					Field: "paymentStatus",
					From:  string(order.PaymentStatus),
					To:    string(next),
				}
				respondWithError(c, http.StatusConflict, route, transitionErr.Error())
				return
			}
			update["paymentStatus"] = next
			order.PaymentStatus = next
		}

		if _, err := db.Collection("orders").UpdateByID(ctx, orderID, bson.M{"$set": update}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] order %s now %s/%s", route, order.OrderID, order.OrderStatus, order.PaymentStatus)
		respondData(c, http.StatusOK, order)
	}
}

/* =========================
   CANCEL
========================= */

// CancelOrder forces orderStatus to cancelled. Idempotent: cancelling an
// already cancelled order succeeds and leaves the document unchanged.
func CancelOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/cancel"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{"$set": bson.M{
			"orderStatus": models.OrderCancelled,
			"updatedAt":   time.Now(),
		}}

		var order models.Order
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := db.Collection("orders").FindOneAndUpdate(ctx, bson.M{"_id": orderID}, update, opts).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "Order not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] order %s cancelled", route, order.OrderID)
		respondDataMessage(c, http.StatusOK, order, "Order cancelled")
	}
}
