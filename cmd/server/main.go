// Package main serves the commission calculator over HTTP. Each request
// is its own batch run with fresh run-scoped state, so the server stays
// stateless between requests.
package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/gyKa/commission-calculator/internal/config"
	"github.com/gyKa/commission-calculator/internal/logger"
	"github.com/gyKa/commission-calculator/internal/routes"
)

func main() {
	config.LoadEnv()
	log := logger.ForComponent(logger.New(), "server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	app := fiber.New(fiber.Config{
		AppName: "commission-calculator",
	})
	app.Use(fiberlogger.New())

	routes.SetupRoutes(app, cfg, log)

	addr := ":" + config.GetEnv("PORT", "3000")
	log.Info().Str("addr", addr).Str("base_currency", cfg.BaseCurrency).Msg("listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
