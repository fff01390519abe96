package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/lockgoal/lockgoal-api/internal/clock"
	"github.com/lockgoal/lockgoal-api/internal/config"
	"github.com/lockgoal/lockgoal-api/internal/database"
	"github.com/lockgoal/lockgoal-api/internal/handlers"
	"github.com/lockgoal/lockgoal-api/internal/routes"
	"github.com/lockgoal/lockgoal-api/internal/services"
	"github.com/lockgoal/lockgoal-api/internal/store"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := services.InitShield(cfg.FCMServiceAccount); err != nil {
		log.Fatalf("Failed to initialize shield gateway: %v", err)
	}

	handlers.Init(store.NewGorm(database.DB), clock.New())

	app := fiber.New(fiber.Config{
		AppName: "lockgoal-api",
	})
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Setup(app)

	log.Printf("Listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
