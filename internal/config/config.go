package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds the configuration shared by the client and the development API.
// Values come from defaults, an optional YAML file, a .env file and the environment,
// in increasing order of precedence.
type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	Auth     AuthConfig    `mapstructure:"auth"`
	API      APIConfig     `mapstructure:"api"`
	Display  DisplayConfig `mapstructure:"display"`
	Seed     SeedConfig    `mapstructure:"seed"`
	LogLevel string        `mapstructure:"log_level"`
	LogFile  string        `mapstructure:"log_file"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"` // Valid API keys for mutating requests
}

// APIConfig points the client at the REST API
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DisplayConfig struct {
	Locale   string `mapstructure:"locale"`
	Currency string `mapstructure:"currency"`
}

// SeedConfig controls the catalog the development API starts with
type SeedConfig struct {
	File      string `mapstructure:"file"`
	FakeFoods int    `mapstructure:"fake_foods"`
}

var defaults = map[string]interface{}{
	"server.port":             "3333",
	"server.host":             "0.0.0.0",
	"server.read_timeout":     "15s",
	"server.write_timeout":    "15s",
	"server.shutdown_timeout": "30s",
	"auth.api_keys":           []string{"apitest"},
	"api.base_url":            "http://localhost:3333",
	"api.api_key":             "apitest",
	"api.timeout":             "10s",
	"display.locale":          "pt-BR",
	"display.currency":        "BRL",
	"seed.file":               "",
	"seed.fake_foods":         0,
	"log_level":               "info",
	"log_file":                "",
}

var envBindings = map[string][]string{
	"server.port":             {"PORT"},
	"server.host":             {"HOST"},
	"server.read_timeout":     {"READ_TIMEOUT"},
	"server.write_timeout":    {"WRITE_TIMEOUT"},
	"server.shutdown_timeout": {"SHUTDOWN_TIMEOUT"},
	"auth.api_keys":           {"API_KEYS"},
	"api.base_url":            {"FOODAPP_API_URL"},
	"api.api_key":             {"FOODAPP_API_KEY"},
	"api.timeout":             {"FOODAPP_API_TIMEOUT"},
	"display.locale":          {"FOODAPP_LOCALE"},
	"display.currency":        {"FOODAPP_CURRENCY"},
	"seed.file":               {"SEED_FILE"},
	"seed.fake_foods":         {"SEED_FAKE_FOODS"},
	"log_level":               {"LOG_LEVEL"},
	"log_file":                {"FOODAPP_LOG_FILE"},
}

// Load reads configuration using a fresh viper instance.
// An empty path searches for .foodapp.yaml in the home and working directories.
func Load(path string) (*Config, error) {
	return FromViper(viper.New(), path)
}

// FromViper reads configuration into v, which may already carry bound flags
func FromViper(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".foodapp")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if err := validateBaseURL(c.API.BaseURL); err != nil {
		return err
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}

	if _, err := money.NewFormatter(c.Display.Locale, c.Display.Currency); err != nil {
		return err
	}

	if c.Seed.FakeFoods < 0 {
		return fmt.Errorf("fake food count must not be negative: %d", c.Seed.FakeFoods)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("api base url is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api base url %q: host is required", raw)
	}

	return nil
}
