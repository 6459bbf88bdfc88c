package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"windowmart/config"
	"windowmart/db"
	"windowmart/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()

	// Open database; the handle is shared by all handlers and closed after
	// shutdown
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", cfg.DatabasePath)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${locals:requestid} | ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(app, database)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Println("Server shutdown failed:", err)
		}
	}()

	// Start server
	log.Println("Window catalog API listening on port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}

	if err := db.Close(database); err != nil {
		log.Println("Failed to close database:", err)
	}
}
