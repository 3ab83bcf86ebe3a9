package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Service converts amounts between currencies through a fixed rate table
// expressed against a single base currency. It is a pure function of its
// inputs and the table; callers round as needed.
type Service interface {
	// Convert converts amount from one currency to another. An empty from
	// currency means the process default. Rates are linear, so minor-unit
	// and major-unit values convert identically.
	Convert(amount decimal.Decimal, toCurrency, fromCurrency string) (decimal.Decimal, error)

	// BaseCurrency is the currency the rate table is expressed against.
	BaseCurrency() string
}

type service struct {
	rates           map[string]decimal.Decimal
	baseCurrency    string
	defaultCurrency string
}

// NewService creates an exchange service over the given rate table. An
// empty default currency falls back to the base currency.
func NewService(rates map[string]decimal.Decimal, baseCurrency, defaultCurrency string) Service {
	if baseCurrency == "" {
		panic("base currency is required")
	}
	if defaultCurrency == "" {
		defaultCurrency = baseCurrency
	}
	return &service{
		rates:           rates,
		baseCurrency:    baseCurrency,
		defaultCurrency: defaultCurrency,
	}
}

func (s *service) BaseCurrency() string {
	return s.baseCurrency
}

func (s *service) Convert(amount decimal.Decimal, toCurrency, fromCurrency string) (decimal.Decimal, error) {
	if fromCurrency == "" {
		fromCurrency = s.defaultCurrency
	}

	if fromCurrency != s.baseCurrency {
		rate, err := s.rate(fromCurrency)
		if err != nil {
			return decimal.Zero, err
		}
		amount = amount.Div(rate)
	}

	if toCurrency == s.baseCurrency {
		return amount, nil
	}

	rate, err := s.rate(toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

func (s *service) rate(currency string) (decimal.Decimal, error) {
	rate, ok := s.rates[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}
	return rate, nil
}
