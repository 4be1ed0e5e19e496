// Package config loads point-of-sale configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// MonthDay is a year-relative calendar bound.
type MonthDay struct {
	Month time.Month `validate:"gte=1,lte=12"`
	Day   int        `validate:"gte=1,lte=31"`
}

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv       string
	LogLevel     string
	LogFormat    string
	ErrorLogPath string

	Currency               string  `validate:"len=3,uppercase"`
	RegisterOpeningBalance float64 `validate:"gte=0"`

	SeniorMinAge  int     `validate:"gt=0"`
	SeniorPercent float64 `validate:"gt=0,lte=100"`

	SummerStart        MonthDay
	SummerEnd          MonthDay
	SummerNameContains map[string]float64 `validate:"dive,gt=0,lte=100"`
}

// Load reads configuration from environment variables and optional .env
// files, applying defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	summerStart, err := parseMonthDay(valueOrDefault(k.String("SUMMER_WINDOW_START"), "05-01"))
	if err != nil {
		return nil, fmt.Errorf("SUMMER_WINDOW_START: %w", err)
	}
	summerEnd, err := parseMonthDay(valueOrDefault(k.String("SUMMER_WINDOW_END"), "08-31"))
	if err != nil {
		return nil, fmt.Errorf("SUMMER_WINDOW_END: %w", err)
	}
	nameContains, err := parseNameContains(
		valueOrDefault(k.String("SUMMER_NAME_CONTAINS"), "drink:10,strawberry:5"))
	if err != nil {
		return nil, fmt.Errorf("SUMMER_NAME_CONTAINS: %w", err)
	}

	cfg := &Config{
		AppEnv:                 valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:               valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:              valueOrDefault(k.String("LOG_FORMAT"), "console"),
		ErrorLogPath:           valueOrDefault(k.String("ERROR_LOG_PATH"), "pos-errors.log"),
		Currency:               valueOrDefault(k.String("CURRENCY"), "SEK"),
		RegisterOpeningBalance: parseFloat(k.String("REGISTER_OPENING_BALANCE"), 10000),
		SeniorMinAge:           parseInt(k.String("SENIOR_MIN_AGE"), 65),
		SeniorPercent:          parseFloat(k.String("SENIOR_PERCENT"), 10),
		SummerStart:            summerStart,
		SummerEnd:              summerEnd,
		SummerNameContains:     nameContains,
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// parseMonthDay parses an "MM-DD" calendar bound.
func parseMonthDay(value string) (MonthDay, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	if len(parts) != 2 {
		return MonthDay{}, fmt.Errorf("expected MM-DD, got %q", value)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthDay{}, fmt.Errorf("month in %q: %w", value, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthDay{}, fmt.Errorf("day in %q: %w", value, err)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

// parseNameContains parses "substr:percent" pairs separated by commas.
// Substrings are lowercased; matching is case-insensitive downstream.
func parseNameContains(value string) (map[string]float64, error) {
	table := make(map[string]float64)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		substr, percentText, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("expected substr:percent, got %q", pair)
		}
		percent, err := strconv.ParseFloat(strings.TrimSpace(percentText), 64)
		if err != nil {
			return nil, fmt.Errorf("percent in %q: %w", pair, err)
		}
		table[strings.ToLower(strings.TrimSpace(substr))] = percent
	}
	return table, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
