package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      Log      `yaml:"log"`
	Server   Server   `yaml:"server"`
	Weather  Weather  `yaml:"weather"`
	Dialogue Dialogue `yaml:"dialogue"`
	Speech   Speech   `yaml:"speech"`
	MCP      MCP      `yaml:"mcp"`
}

type Server struct {
	// Address the HTTP API listens on
	Addr string `yaml:"addr" example:":8080" validate:"required"`
}

type Weather struct {
	// Open-Meteo geocoding API base url
	GeocodingURL string `yaml:"geocoding_url" example:"https://geocoding-api.open-meteo.com/v1/search" validate:"required,url"`
	// Open-Meteo forecast API base url
	ForecastURL string `yaml:"forecast_url" example:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`
	// Per-request timeout for weather API calls
	TimeoutSeconds int `yaml:"timeout_seconds" example:"10" validate:"min=1"`
	// Number of daily forecast entries to request
	ForecastDays int `yaml:"forecast_days" example:"7" validate:"min=1,max=16"`
}

type Dialogue struct {
	// Clear intent and date after a completed answer so the next
	// weather question starts from a clean slate
	ResetOnAnswer bool `yaml:"reset_on_answer" example:"false"`
}

type Speech struct {
	// Enable speech recognition via Yandex SpeechKit
	Enabled bool `yaml:"enabled" example:"false"`
	// Path to the Yandex Cloud service account key
	KeyFile string `yaml:"key_file" example:"service-account-key.json"`
}

type MCP struct {
	// Serve weather tools over MCP stdio instead of the console chat
	Enabled bool `yaml:"enabled" example:"false"`
}

type Log struct {
	// Minimum log level (debug, info, warn, error)
	Level string `yaml:"level" example:"info" validate:"oneof=debug info warn error"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil && !os.IsNotExist(err) {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if data != nil {
		if err = yaml.Unmarshal(data, &result); err != nil {
			return nil, oops.Errorf("failed to parse YAML config: %w", err)
		}
	}

	applyDefaults(&result)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Weather.GeocodingURL == "" {
		cfg.Weather.GeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	}
	if cfg.Weather.ForecastURL == "" {
		cfg.Weather.ForecastURL = "https://api.open-meteo.com/v1/forecast"
	}
	if cfg.Weather.TimeoutSeconds == 0 {
		cfg.Weather.TimeoutSeconds = 10
	}
	if cfg.Weather.ForecastDays == 0 {
		cfg.Weather.ForecastDays = 7
	}
	if cfg.Speech.KeyFile == "" {
		cfg.Speech.KeyFile = "service-account-key.json"
	}
}
