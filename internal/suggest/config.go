package suggest

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/JaimeStill/qit/pkg/formatting"
)

// Config holds autocomplete endpoint settings.
type Config struct {
	Enabled     *bool               `toml:"enabled"`
	Endpoint    string              `toml:"endpoint"`
	Client      string              `toml:"client"`
	Language    string              `toml:"language"`
	Region      string              `toml:"region"`
	Timeout     string              `toml:"timeout"`
	MaxBodySize formatting.ByteSize `toml:"max_body_size"`
	UserAgent   string              `toml:"user_agent"`
}

// Env maps Config fields to environment variable names for override injection.
type Env struct {
	Enabled     string
	Endpoint    string
	Client      string
	Language    string
	Region      string
	Timeout     string
	MaxBodySize string
	UserAgent   string
}

// IsEnabled reports whether suggestions should be fetched. Defaults to true.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled != nil {
		enabled := *overlay.Enabled
		c.Enabled = &enabled
	}
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.Client != "" {
		c.Client = overlay.Client
	}
	if overlay.Language != "" {
		c.Language = overlay.Language
	}
	if overlay.Region != "" {
		c.Region = overlay.Region
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxBodySize > 0 {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.UserAgent != "" {
		c.UserAgent = overlay.UserAgent
	}
}

func (c *Config) loadDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "https://suggestqueries.google.com/complete/search"
	}
	if c.Client == "" {
		c.Client = "firefox"
	}
	if c.Language == "" {
		c.Language = "ar"
	}
	if c.Region == "" {
		c.Region = "eg"
	}
	if c.Timeout == "" {
		c.Timeout = "5s"
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = 1 << 20
	}
	if c.UserAgent == "" {
		c.UserAgent = "qit/1.0"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = &enabled
			}
		}
	}
	if env.Endpoint != "" {
		if v := os.Getenv(env.Endpoint); v != "" {
			c.Endpoint = v
		}
	}
	if env.Client != "" {
		if v := os.Getenv(env.Client); v != "" {
			c.Client = v
		}
	}
	if env.Language != "" {
		if v := os.Getenv(env.Language); v != "" {
			c.Language = v
		}
	}
	if env.Region != "" {
		if v := os.Getenv(env.Region); v != "" {
			c.Region = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.MaxBodySize != "" {
		if v := os.Getenv(env.MaxBodySize); v != "" {
			var size formatting.ByteSize
			if err := size.UnmarshalText([]byte(v)); err == nil {
				c.MaxBodySize = size
			}
		}
	}
	if env.UserAgent != "" {
		if v := os.Getenv(env.UserAgent); v != "" {
			c.UserAgent = v
		}
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint scheme: %q", u.Scheme)
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("max_body_size must be positive: %d", c.MaxBodySize)
	}
	return nil
}
