// Package config loads server settings from flags, ARCANE_* environment
// variables, an optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/everydev1618/arcane-mcp/arcane"
	"github.com/everydev1618/arcane-mcp/mcp"
)

// EnvPrefix is prepended to every environment variable, e.g. ARCANE_HOST.
const EnvPrefix = "ARCANE"

// Setting keys. Environment variables are the upper-cased key with the
// prefix, so "api_key" is read from ARCANE_API_KEY.
const (
	KeyHost      = "host"
	KeyAPIKey    = "api_key"
	KeyTimeout   = "timeout"
	KeyRateLimit = "rate_limit"
	KeyRateBurst = "rate_burst"
	KeyTransport = "transport"
	KeyAddr      = "addr"
	KeyLogLevel  = "log_level"
	KeyTools     = "tools"
)

var (
	// ErrMissingHost is returned when no backend host is configured.
	ErrMissingHost = errors.New("ARCANE_HOST is required")

	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("ARCANE_API_KEY is required")
)

// Config holds the server settings.
type Config struct {
	Host      string        `mapstructure:"host" yaml:"host"`
	APIKey    string        `mapstructure:"api_key" yaml:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit" yaml:"rate_limit"`
	RateBurst int           `mapstructure:"rate_burst" yaml:"rate_burst"`
	Transport string        `mapstructure:"transport" yaml:"transport"`
	Addr      string        `mapstructure:"addr" yaml:"addr"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`

	// Tools restricts the exposed tools to these names. Empty exposes all.
	Tools []string `mapstructure:"tools" yaml:"tools"`
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyHost, "")
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyTimeout, arcane.DefaultTimeout)
	v.SetDefault(KeyRateLimit, 0.0)
	v.SetDefault(KeyRateBurst, 1)
	v.SetDefault(KeyTransport, string(mcp.TransportStdio))
	v.SetDefault(KeyAddr, "127.0.0.1:8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTools, []string{})
	return v
}

// LoadDotEnv loads path into the process environment if it exists.
// Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the optional config file into v and decodes the result.
// The returned Config has not been validated.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings needed to serve.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Host) == "" {
		errs = append(errs, ErrMissingHost)
	}
	if c.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	switch mcp.TransportType(c.Transport) {
	case mcp.TransportStdio, mcp.TransportHTTP:
	default:
		errs = append(errs, fmt.Errorf("transport %q: must be stdio or http", c.Transport))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout %s: must be positive", c.Timeout))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit %v: must not be negative", c.RateLimit))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the configured log level, or info if it does not parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// ClientOptions returns the arcane.Client options the settings imply.
func (c *Config) ClientOptions() []arcane.Option {
	opts := []arcane.Option{arcane.WithTimeout(c.Timeout)}
	if c.RateLimit > 0 {
		opts = append(opts, arcane.WithRateLimit(c.RateLimit, c.RateBurst))
	}
	return opts
}
