package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/config"
	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/database"
	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/handlers"
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
		log.Printf("⚠️ order index warning: %v", err)
	}

	r := gin.Default()

	r.POST("/orders", handlers.CreateOrder(db))
	r.GET("/orders", handlers.GetOrders(db))
	r.GET("/order-confirmation", handlers.OrderConfirmation())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
