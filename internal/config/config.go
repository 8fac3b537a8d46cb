package config

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the discovery backend
type Config struct {
	// Server configuration
	Host string `env:"BACKEND_HOST" envDefault:"127.0.0.1"`
	Port int    `env:"PORT" envDefault:"3000"`

	// Static root directory, relative to the base directory unless absolute
	StaticRoot string `env:"BACKEND_ROOT" envDefault:"dist"`

	// Sample graph document, relative to the base directory unless absolute
	SampleGraphPath string `env:"SAMPLE_GRAPH_PATH" envDefault:"data/sample-graph.json"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables, then overlays the
// command-line flags. Flag defaults come from the env-parsed values, so a
// flag given on the command line always wins over the environment.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	fs := flag.NewFlagSet("backend", flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "address to bind")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.StaticRoot, "root", cfg.StaticRoot, "static file root, relative to the base directory")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.Host == "" {
		return fmt.Errorf("host is required")
	}

	if c.StaticRoot == "" {
		return fmt.Errorf("static root is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL returns the base URL the server listens on
func (c *Config) URL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// ResolveStaticRoot resolves the static root against the base directory.
// An absolute static root is returned unchanged.
func (c *Config) ResolveStaticRoot(baseDir string) string {
	if filepath.IsAbs(c.StaticRoot) {
		return c.StaticRoot
	}
	return filepath.Join(baseDir, c.StaticRoot)
}

// ResolveSampleGraphPath resolves the sample graph path against the base directory.
func (c *Config) ResolveSampleGraphPath(baseDir string) string {
	if filepath.IsAbs(c.SampleGraphPath) {
		return c.SampleGraphPath
	}
	return filepath.Join(baseDir, c.SampleGraphPath)
}
