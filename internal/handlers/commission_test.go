package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyKa/commission-calculator/internal/config"
)

func testApp() *fiber.App {
	cfg := &config.Config{
		BaseCurrency:    "EUR",
		DefaultCurrency: "EUR",
		DateLayout:      config.DefaultDateLayout,
		Rates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("1.1497"),
		},
	}

	app := fiber.New()
	h := NewCommissionHandler(cfg, zerolog.Nop())
	app.Get("/health", HealthCheck)
	app.Post("/api/v1/commissions", h.CalculateBatch)
	return app
}

func TestHealthCheck(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCalculateBatch(t *testing.T) {
	app := testApp()
	input := "06/01/2015 10:00:00,2,legal,cash_in,200.00,EUR\n"

	req := httptest.NewRequest("POST", "/api/v1/commissions", strings.NewReader(input))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		BatchID string `json:"batch_id"`
		Results []struct {
			OperationID int    `json:"operation_id"`
			Commission  string `json:"commission"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.NotEmpty(t, payload.BatchID)
	require.Len(t, payload.Results, 1)
	assert.Equal(t, 1, payload.Results[0].OperationID)
	assert.Equal(t, "6.00", payload.Results[0].Commission)
}

func TestCalculateBatchEmptyBody(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/commissions", strings.NewReader("")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCalculateBatchUnknownCurrency(t *testing.T) {
	app := testApp()
	input := "06/01/2015 10:00:00,2,legal,cash_in,200.00,GBP\n"

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/commissions", strings.NewReader(input)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "unknown currency")
}

func TestCalculateBatchMalformedRecord(t *testing.T) {
	app := testApp()
	input := "06/01/2015 10:00:00,2,legal,cash_in,200.5,EUR\n"

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/commissions", strings.NewReader(input)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
