package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// HourRange is an inclusive wall-clock hour window, e.g. 7-9.
type HourRange struct {
	From int
	To   int
}

// Config holds the application configuration
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Notification gateway Config
	NotifyGatewayURL string        `env:"NOTIFY_GATEWAY_URL"`
	NotifySecret     string        `env:"NOTIFY_SECRET"`
	NotifyTimeout    time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
	NotifyMaxRetries int           `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
	NotifyBaseDelay  time.Duration `env:"NOTIFY_BASE_DELAY" envDefault:"1s"`

	// Dispatch Config
	DispatchLookupTimeout time.Duration `env:"DISPATCH_LOOKUP_TIMEOUT" envDefault:"3s"`

	// Hot spot Config
	HotSpotThreshold     int         `env:"HOTSPOT_THRESHOLD" envDefault:"5"`
	HotSpotToleranceDeg  float64     `env:"HOTSPOT_TOLERANCE_DEG" envDefault:"0.01"`
	HotSpotWindowMinutes int         `env:"HOTSPOT_WINDOW_MINUTES" envDefault:"60"`
	PeakHours            []HourRange `env:"PEAK_HOURS" envDefault:"7-9,17-19"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads configuration from environment variables and the .env file
func LoadConfig() (*Config, error) {
	// Load environment variables from .env, if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		NotifyGatewayURL:      os.Getenv("NOTIFY_GATEWAY_URL"),
		NotifySecret:          os.Getenv("NOTIFY_SECRET"),
		NotifyTimeout:         getEnvAsDuration("NOTIFY_TIMEOUT", 5*time.Second),
		NotifyMaxRetries:      getEnvAsInt("NOTIFY_MAX_RETRIES", 3),
		NotifyBaseDelay:       getEnvAsDuration("NOTIFY_BASE_DELAY", time.Second),
		DispatchLookupTimeout: getEnvAsDuration("DISPATCH_LOOKUP_TIMEOUT", 3*time.Second),
		HotSpotThreshold:      getEnvAsInt("HOTSPOT_THRESHOLD", 5),
		HotSpotToleranceDeg:   getEnvAsFloat("HOTSPOT_TOLERANCE_DEG", 0.01),
		HotSpotWindowMinutes:  getEnvAsInt("HOTSPOT_WINDOW_MINUTES", 60),
	}

	peakHours, err := parsePeakHours(getEnv("PEAK_HOURS", "7-9,17-19"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PEAK_HOURS: %w", err)
	}
	cfg.PeakHours = peakHours

	// Load API keys
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// IsPeakHour reports whether the given wall-clock hour falls inside one of
// the configured peak windows. Both window ends are inclusive.
func (c *Config) IsPeakHour(hour int) bool {
	for _, r := range c.PeakHours {
		if hour >= r.From && hour <= r.To {
			return true
		}
	}
	return false
}

// parsePeakHours parses a "7-9,17-19" style window list
func parsePeakHours(s string) ([]HourRange, error) {
	parts := strings.Split(s, ",")
	ranges := make([]HourRange, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid hour range %q", part)
		}
		from, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid hour range %q: %w", part, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid hour range %q: %w", part, err)
		}
		if from < 0 || to > 23 || from > to {
			return nil, fmt.Errorf("hour range %q out of bounds", part)
		}
		ranges = append(ranges, HourRange{From: from, To: to})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no hour ranges configured")
	}
	return ranges, nil
}

// getEnv returns an environment variable value or the default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or the default
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns an environment variable as float64 or the default
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
