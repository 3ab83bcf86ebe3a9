package handlers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyKa/commission-calculator/internal/config"
	"github.com/gyKa/commission-calculator/internal/repositories"
	"github.com/gyKa/commission-calculator/internal/services/batch"
	"github.com/gyKa/commission-calculator/internal/services/commission"
	"github.com/gyKa/commission-calculator/internal/services/exchange"
)

// CommissionHandler runs commission batches submitted over HTTP.
type CommissionHandler struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewCommissionHandler(cfg *config.Config, log zerolog.Logger) *CommissionHandler {
	return &CommissionHandler{cfg: cfg, log: log}
}

// CalculateBatch accepts a CSV operation batch as the request body and
// responds with one commission per operation, in ingestion order. All
// state lives only for the request, matching the CLI's run-scoped stores.
func (h *CommissionHandler) CalculateBatch(c *fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "empty batch",
		})
	}

	batchID := uuid.NewString()
	log := h.log.With().Str("batch_id", batchID).Logger()

	users := repositories.NewUserRepository()
	operations := repositories.NewOperationRepository()
	discounts := repositories.NewDiscountRepository()
	exchangeService := exchange.NewService(h.cfg.Rates, h.cfg.BaseCurrency, h.cfg.DefaultCurrency)
	calculator := commission.NewService(operations, discounts, exchangeService)
	runner := batch.NewService(users, operations, discounts, calculator, h.cfg.DateLayout, log)

	results, err := runner.Run(bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("batch rejected")
		status := fiber.StatusBadRequest
		if errors.Is(err, exchange.ErrUnknownCurrency) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"batch_id": batchID,
		"results":  results,
	})
}
