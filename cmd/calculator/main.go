// Package main is the batch entrypoint: it reads an operation CSV from a
// file argument or stdin and prints one commission per line, in input
// order. Logs go to stderr so stdout stays a clean commission stream.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/gyKa/commission-calculator/internal/config"
	"github.com/gyKa/commission-calculator/internal/logger"
	"github.com/gyKa/commission-calculator/internal/repositories"
	"github.com/gyKa/commission-calculator/internal/services/batch"
	"github.com/gyKa/commission-calculator/internal/services/commission"
	"github.com/gyKa/commission-calculator/internal/services/exchange"
)

func main() {
	config.LoadEnv()
	log := logger.ForComponent(logger.New(), "calculator")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	input := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("opening input file")
		}
		defer f.Close()
		input = f
	}

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	users := repositories.NewUserRepository()
	operations := repositories.NewOperationRepository()
	discounts := repositories.NewDiscountRepository()

	exchangeService := exchange.NewService(cfg.Rates, cfg.BaseCurrency, cfg.DefaultCurrency)
	calculator := commission.NewService(operations, discounts, exchangeService)
	runner := batch.NewService(users, operations, discounts, calculator, cfg.DateLayout, log)

	results, err := runner.Run(input)
	if err != nil {
		log.Fatal().Err(err).Msg("batch run failed")
	}

	for _, result := range results {
		fmt.Println(result.Commission)
	}
}
