package main

import (
	"context"
	"log"

	"invento/config"
	"invento/database"
	"invento/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v72"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	stripe.Key = cfg.StripeSecretKey

	// Connect to MongoDB
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close(ctx)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	routes.Setup(app, cfg, db)

	log.Fatal(app.Listen(":" + cfg.Port))
}
