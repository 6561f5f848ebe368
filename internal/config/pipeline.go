package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/qit/internal/keyword"
)

const (
	EnvPipelineDefaultLanguage = "QIT_PIPELINE_DEFAULT_LANGUAGE"
	EnvPipelineDefaultRegion   = "QIT_PIPELINE_DEFAULT_REGION"
	EnvPipelineRulesFile       = "QIT_PIPELINE_RULES_FILE"
)

// PipelineConfig holds the locale applied to requests that omit one and the
// optional rules file layered over the built-in tables.
type PipelineConfig struct {
	DefaultLanguage string `toml:"default_language"`
	DefaultRegion   string `toml:"default_region"`
	RulesFile       string `toml:"rules_file"`
}

// Locale returns the default locale.
func (c *PipelineConfig) Locale() keyword.Locale {
	return keyword.NewLocale(c.DefaultLanguage, c.DefaultRegion)
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.DefaultLanguage != "" {
		c.DefaultLanguage = overlay.DefaultLanguage
	}
	if overlay.DefaultRegion != "" {
		c.DefaultRegion = overlay.DefaultRegion
	}
	if overlay.RulesFile != "" {
		c.RulesFile = overlay.RulesFile
	}
}

func (c *PipelineConfig) loadDefaults() {
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "ar"
	}
	if c.DefaultRegion == "" {
		c.DefaultRegion = "eg"
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineDefaultLanguage); v != "" {
		c.DefaultLanguage = v
	}
	if v := os.Getenv(EnvPipelineDefaultRegion); v != "" {
		c.DefaultRegion = v
	}
	if v := os.Getenv(EnvPipelineRulesFile); v != "" {
		c.RulesFile = v
	}
}

func (c *PipelineConfig) validate() error {
	if c.Locale().Language == "" {
		return fmt.Errorf("default_language required")
	}
	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); err != nil {
			return fmt.Errorf("rules_file: %w", err)
		}
	}
	return nil
}
