package openapi

import (
	"os"
	"strings"
)

// Config holds the document metadata published with the generated spec.
// Servers lists absolute origins (e.g. https://qit.example.com) the API is
// reachable at; when empty the spec advertises the base path alone.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Title       string
	Description string
	Servers     string
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Servers != nil {
		c.Servers = overlay.Servers
	}
}

// ServerURLs returns the server entries for an API mounted at basePath.
func (c *Config) ServerURLs(basePath string) []string {
	if len(c.Servers) == 0 {
		return []string{basePath}
	}
	urls := make([]string, len(c.Servers))
	for i, s := range c.Servers {
		urls[i] = strings.TrimSuffix(s, "/") + basePath
	}
	return urls
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "qit API"
	}
	if c.Description == "" {
		c.Description = "Expands a seed keyword into deduplicated search queries labelled with a search intent."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := os.Getenv(env.Title); env.Title != "" && v != "" {
		c.Title = v
	}
	if v := os.Getenv(env.Description); env.Description != "" && v != "" {
		c.Description = v
	}
	if v := os.Getenv(env.Servers); env.Servers != "" && v != "" {
		c.Servers = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Servers = append(c.Servers, s)
			}
		}
	}
}
