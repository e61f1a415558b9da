package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"cakesim/locale"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port          string
	JWTSecret     string
	DefaultLocale string

	// HistoryYears is the warm-up history span for new sessions.
	HistoryYears int

	// Unit economics of the budget ledger.
	CakeCost       decimal.Decimal
	CakePrice      decimal.Decimal
	StartingBudget decimal.Decimal
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from the environment. JWT_SECRET is required;
// everything else has a default.
func Load() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	defaultLocale := os.Getenv("DEFAULT_LOCALE")
	if defaultLocale == "" {
		defaultLocale = locale.German
	}
	if !locale.Supported(defaultLocale) {
		return fmt.Errorf("unsupported DEFAULT_LOCALE %q", defaultLocale)
	}

	years, err := intEnv("HISTORY_YEARS", 3)
	if err != nil {
		return err
	}
	if years < 1 || years > 10 {
		return fmt.Errorf("HISTORY_YEARS must be between 1 and 10, got %d", years)
	}

	cost, err := decimalEnv("CAKE_COST", "2")
	if err != nil {
		return err
	}
	price, err := decimalEnv("CAKE_PRICE", "3")
	if err != nil {
		return err
	}
	budget, err := decimalEnv("STARTING_BUDGET", "2000")
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	AppConfig = Config{
		Port:           port,
		JWTSecret:      secret,
		DefaultLocale:  defaultLocale,
		HistoryYears:   years,
		CakeCost:       cost,
		CakePrice:      price,
		StartingBudget: budget,
	}
	return nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	raw := os.Getenv(key)
	if raw == "" {
		raw = fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
