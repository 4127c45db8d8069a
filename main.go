package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lunchly/lunchly-app/config"
	"github.com/lunchly/lunchly-app/middlewares"
	"github.com/lunchly/lunchly-app/models"
	"github.com/lunchly/lunchly-app/router"
	"github.com/lunchly/lunchly-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.Customer{}, &models.Reservation{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db)

	// 50 req/s per IP with room for bursts
	rateLimiter := middlewares.NewRateLimiter(50, 100)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
