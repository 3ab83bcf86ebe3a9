package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

const (
	// DefaultBaseCurrency is the currency the shipped rate table is
	// expressed against.
	DefaultBaseCurrency = "EUR"

	// DefaultDateLayout matches the batch export format, day first.
	DefaultDateLayout = "02/01/2006 15:04:05"
)

// defaultRates is the static table the calculator ships with. Override
// with the RATES env variable, a JSON object of currency code to rate
// against the base currency.
var defaultRates = map[string]string{
	"USD": "1.1497",
	"JPY": "129.53",
}

// Config carries the static run parameters: the rate table and the input
// conventions of the batch format.
type Config struct {
	BaseCurrency    string
	DefaultCurrency string
	DateLayout      string
	Rates           map[string]decimal.Decimal
}

// Load assembles the run configuration from the environment, falling back
// to the shipped defaults.
func Load() (*Config, error) {
	base := GetEnv("BASE_CURRENCY", DefaultBaseCurrency)

	rates, err := parseRates(GetEnv("RATES", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		BaseCurrency:    base,
		DefaultCurrency: GetEnv("DEFAULT_CURRENCY", base),
		DateLayout:      GetEnv("DATE_LAYOUT", DefaultDateLayout),
		Rates:           rates,
	}, nil
}

func parseRates(raw string) (map[string]decimal.Decimal, error) {
	src := defaultRates
	if raw != "" {
		var parsed map[string]json.Number
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, fmt.Errorf("parsing RATES: %w", err)
		}
		src = make(map[string]string, len(parsed))
		for code, rate := range parsed {
			src[code] = rate.String()
		}
	}

	rates := make(map[string]decimal.Decimal, len(src))
	for code, rate := range src {
		d, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("rate for %s: %w", code, err)
		}
		rates[code] = d
	}
	return rates, nil
}
