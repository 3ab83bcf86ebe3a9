// Package routes wires handlers onto the fiber application.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyKa/commission-calculator/internal/config"
	"github.com/gyKa/commission-calculator/internal/handlers"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cfg *config.Config, log zerolog.Logger) {
	commissionHandler := handlers.NewCommissionHandler(cfg, log)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api/v1")
	api.Post("/commissions", commissionHandler.CalculateBatch)
}
