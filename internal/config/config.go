package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	API struct {
		Key               string        `yaml:"key" env:"EXCHANGE_RATE_API_KEY"`
		BaseURL           string        `yaml:"base_url" env:"FX_BASE_URL"`
		Timeout           time.Duration `yaml:"timeout" env:"FX_TIMEOUT"`
		RequestsPerSecond float64       `yaml:"requests_per_second" env:"FX_REQUESTS_PER_SECOND"`
	} `yaml:"api"`
	Query struct {
		Base   string `yaml:"base" env:"FX_BASE_CURRENCY"`
		Target string `yaml:"target" env:"FX_TARGET_CURRENCY"`
		Days   int    `yaml:"days" env:"FX_DAYS"`
	} `yaml:"query"`
	Cache struct {
		TTL             time.Duration `yaml:"ttl" env:"FX_CACHE_TTL"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" env:"FX_CACHE_CLEANUP"`
		Capacity        int           `yaml:"capacity" env:"FX_CACHE_CAPACITY"`
	} `yaml:"cache"`
	Output struct {
		ExportPath  string `yaml:"export_path" env:"FX_EXPORT_PATH"`
		ChartsPath  string `yaml:"charts_path" env:"FX_CHARTS_PATH"`
		MetricsFile string `yaml:"metrics_file" env:"FX_METRICS_FILE"`
	} `yaml:"output"`
	Telegram struct {
		BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy" env:"HTTPS_PROXY"`
}

// Load reads config from an optional YAML file and .env, then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://v6.exchangerate-api.com/v6"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.Query.Days == 0 {
		c.Query.Days = 30
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 15 * time.Minute
	}
	if c.Cache.CleanupInterval == 0 {
		c.Cache.CleanupInterval = 30 * time.Minute
	}
	if c.Cache.Capacity == 0 {
		c.Cache.Capacity = 64
	}
	c.Normalize()
}

// Normalize upper-cases and trims currency codes.
func (c *Config) Normalize() {
	c.Query.Base = strings.ToUpper(strings.TrimSpace(c.Query.Base))
	c.Query.Target = strings.ToUpper(strings.TrimSpace(c.Query.Target))
	c.API.Key = strings.TrimSpace(c.API.Key)
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("api key is required")
	}
	if c.Query.Base == "" {
		return fmt.Errorf("base currency is required")
	}
	if c.Query.Target == "" {
		return fmt.Errorf("target currency is required")
	}
	if c.Query.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("api.requests_per_second must not be negative")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
