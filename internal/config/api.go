package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/qit/pkg/formatting"
	"github.com/JaimeStill/qit/pkg/middleware"
	"github.com/JaimeStill/qit/pkg/openapi"
	"github.com/JaimeStill/qit/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "QIT_CORS_ENABLED",
	Origins:          "QIT_CORS_ORIGINS",
	AllowedMethods:   "QIT_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "QIT_CORS_ALLOWED_HEADERS",
	ExposedHeaders:   "QIT_CORS_EXPOSED_HEADERS",
	AllowCredentials: "QIT_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "QIT_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "QIT_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "QIT_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "QIT_OPENAPI_TITLE",
	Description: "QIT_OPENAPI_DESCRIPTION",
	Servers:     "QIT_OPENAPI_SERVERS",
}

// APIConfig holds API routing, request limits, CORS, pagination, and
// OpenAPI document settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize formatting.ByteSize   `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
	OpenAPI     openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize as a byte count.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	return c.MaxBodySize.Int64()
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize > 0 {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = 64 * 1024
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("QIT_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("QIT_API_MAX_BODY_SIZE"); v != "" {
		var size formatting.ByteSize
		if err := size.UnmarshalText([]byte(v)); err == nil {
			c.MaxBodySize = size
		}
	}
}

func (c *APIConfig) validate() error {
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	return nil
}
