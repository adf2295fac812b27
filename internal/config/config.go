package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the price service
type Config struct {
	// Server configuration
	HTTPHost  string `env:"PRICECELL_HTTP_HOST" envDefault:"127.0.0.1"`
	HTTPPort  int    `env:"PRICECELL_HTTP_PORT" envDefault:"3000"`
	AdminHost string `env:"PRICECELL_ADMIN_HOST" envDefault:"127.0.0.1"`
	AdminPort int    `env:"PRICECELL_ADMIN_PORT" envDefault:"9102"` // 0 disables the admin listener
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`

	// Timeouts
	Timeouts TimeoutConfig
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	ReadHeaderTimeout time.Duration `env:"TIMEOUT_READ_HEADER" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"10s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith reads configuration using the given env options.
// Tests use Options.Environment to avoid touching the process environment.
func LoadWith(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server ports
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.AdminPort < 0 || c.AdminPort > 65535 {
		return fmt.Errorf("invalid admin port: %d", c.AdminPort)
	}
	if c.AdminEnabled() && c.GetAdminAddr() == c.GetHTTPAddr() {
		return fmt.Errorf("admin address %s collides with HTTP address", c.GetAdminAddr())
	}

	if c.Timeouts.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("read header timeout must be positive")
	}
	if c.Timeouts.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid gin mode: %s (must be debug, release, or test)", c.GinMode)
	}

	return nil
}

// AdminEnabled reports whether the admin listener should be started
func (c *Config) AdminEnabled() bool {
	return c.AdminPort != 0
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// GetAdminAddr returns the admin server address
func (c *Config) GetAdminAddr() string {
	return net.JoinHostPort(c.AdminHost, strconv.Itoa(c.AdminPort))
}
