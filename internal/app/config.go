package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stylet/internal/logging"
)

// tokenEnv overrides the configured bot token so it can stay out of
// config files.
const tokenEnv = "STYLET_TOKEN"

// Config holds runtime wiring options for building the app.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Relay    RelayConfig    `yaml:"relay"`
	Listen   ListenConfig   `yaml:"listen"`
	Log      LogConfig      `yaml:"log"`
}

// TelegramConfig holds Bot API access and the update delivery mode.
type TelegramConfig struct {
	Token   string        `yaml:"token"`
	BaseURL string        `yaml:"base_url"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig switches update delivery from long polling to webhooks
// when PublicURL is set.
type WebhookConfig struct {
	PublicURL   string `yaml:"public_url"`
	Path        string `yaml:"path"`
	SecretToken string `yaml:"secret_token"`
}

// RelayConfig points /post at an HTTP endpoint. An empty Endpoint
// disables posting.
type RelayConfig struct {
	Endpoint string `yaml:"endpoint"`
	Secret   string `yaml:"secret"`
}

// ListenConfig is the local HTTP surface: the webhook server in webhook
// mode, health and metrics in both modes.
type ListenConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls verbosity and the optional JSON log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Webhook: WebhookConfig{Path: "/telegram/webhook"},
		},
		Listen: ListenConfig{Addr: ":8090"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file over Default and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if tok := os.Getenv(tokenEnv); tok != "" {
		cfg.Telegram.Token = tok
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (set telegram.token or %s)", tokenEnv)
	}
	if c.Listen.Addr == "" {
		return fmt.Errorf("listen addr is required")
	}
	if c.Telegram.Webhook.PublicURL != "" {
		if c.Telegram.Webhook.Path == "" {
			return fmt.Errorf("webhook path is required when public_url is set")
		}
		if !strings.HasPrefix(c.Telegram.Webhook.Path, "/") {
			return fmt.Errorf("webhook path must start with /")
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// WebhookMode reports whether updates arrive by webhook rather than by
// long polling.
func (c *Config) WebhookMode() bool {
	return c.Telegram.Webhook.PublicURL != ""
}
