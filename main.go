package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"foodie-backend/internal/config"
	"foodie-backend/internal/database"
	"foodie-backend/internal/handlers"
	"foodie-backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureMenuItemIndexes(db); err != nil {
		log.Printf("menu item index warning: %v", err)
	}

	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/auth/register", handlers.Register(db, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL, config.AppEnv.AdminEmail))
		api.POST("/auth/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL))
		api.GET("/auth/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(db))

		api.GET("/restaurants", handlers.GetRestaurants(db))
		api.GET("/restaurants/:id", handlers.GetRestaurant(db))

		api.GET("/menu", handlers.GetMenuItems(db))
		api.GET("/menu/:id", handlers.GetMenuItem(db))

		api.POST("/orders", handlers.CreateOrder(db))
		api.GET("/orders", handlers.GetOrders(db))
		api.GET("/orders/:id", handlers.GetOrder(db))
		api.PUT("/orders/:id/status", handlers.UpdateOrderStatus(db))
		api.PUT("/orders/:id/cancel", handlers.CancelOrder(db))
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/restaurants", handlers.CreateRestaurant(db))
		admin.PUT("/restaurants/:id", handlers.UpdateRestaurant(db))
		admin.DELETE("/restaurants/:id", handlers.DeleteRestaurant(db))

		admin.POST("/menu", handlers.CreateMenuItem(db))
		admin.PUT("/menu/:id", handlers.UpdateMenuItem(db))
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
