/*
Package config loads runtime configuration from the environment.

Every knob has a working default so the server starts with no environment at
all; production deployments override via INTERNHUB_* variables.
*/
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Config holds the full runtime configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the sqlite database file. ":memory:" is valid for throwaway runs.
	DBPath string

	// Env selects logger behavior: "development" or "production".
	Env string

	// OvertimeThreshold is the daily rendered-hours boundary above which an
	// attendance submission is stored as overtime.
	OvertimeThreshold decimal.Decimal

	// OffboardingMargin is the remaining-hours boundary at or below which an
	// approved intern automatically moves to offboarding.
	OffboardingMargin decimal.Decimal
}

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Addr:              envOr("INTERNHUB_ADDR", ":8080"),
		DBPath:            envOr("INTERNHUB_DB", "internhub.db"),
		Env:               envOr("INTERNHUB_ENV", "development"),
		OvertimeThreshold: decimal.NewFromInt(8),
		OffboardingMargin: decimal.NewFromInt(40),
	}

	if v := os.Getenv("INTERNHUB_OVERTIME_THRESHOLD"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("INTERNHUB_OVERTIME_THRESHOLD: %w", err)
		}
		cfg.OvertimeThreshold = d
	}

	if v := os.Getenv("INTERNHUB_OFFBOARDING_MARGIN"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("INTERNHUB_OFFBOARDING_MARGIN: %w", err)
		}
		cfg.OffboardingMargin = d
	}

	return cfg, nil
}

// NewLogger builds a zap logger suited to the configured environment.
func (c Config) NewLogger() (*zap.Logger, error) {
	if c.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
