package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"4000"`
	CORSOrigin  string `env:"CORS_ORIGIN"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS"`

	// Proxies (IPs or CIDRs) whose forwarding headers are believed; empty trusts none
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Rate limiting (RPS <= 0 disables the limiter)
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Delivery Configuration (unset: smtp in production, auto elsewhere)
	DeliveryMode string `env:"DELIVERY_MODE"`
	ScratchDir   string `env:"SCRATCH_DIR" envDefault:"tmp"`

	// Destination mailboxes
	DestEmail        string `env:"DEST_EMAIL"`
	DestEmailCareers string `env:"DEST_EMAIL_CAREERS"`
	DestEmailContact string `env:"DEST_EMAIL_CONTACT"`
	FromEmail        string `env:"FROM_EMAIL"`

	// SMTP Configuration
	SMTPHost    string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort    int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure  string        `env:"SMTP_SECURE"`
	SMTPUser    string        `env:"SMTP_USER"`
	SMTPPass    string        `env:"SMTP_PASS"`
	EmailUser   string        `env:"EMAIL_USER"`
	EmailPass   string        `env:"EMAIL_PASS"`
	SMTPVerify  bool          `env:"SMTP_VERIFY" envDefault:"true"`
	SMTPTimeout time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`

	// Resolved settings, filled by Load
	Mail     Mail         `env:"-"`
	Delivery DeliveryMode `env:"-"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg, err := parse(env.Options{})
	if err != nil {
		return nil, err
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Mail = Resolve(cfg)

	if strings.TrimSpace(cfg.DeliveryMode) == "" {
		cfg.DeliveryMode = string(DefaultDeliveryMode(cfg.IsProduction()))
	}

	mode, err := ResolveDeliveryMode(cfg.DeliveryMode, cfg.Mail)
	if err != nil {
		return nil, err
	}
	cfg.Delivery = mode

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
