package api

import (
	"fmt"

	"github.com/JaimeStill/qit/internal/catalog"
	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/internal/infrastructure"
	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/internal/suggest"
	"github.com/JaimeStill/qit/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// resources shared by domain systems.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Tables     *catalog.Tables
	Provider   suggest.Provider
	Locale     keyword.Locale
}

// NewRuntime creates an API runtime with a module-scoped logger. It loads
// the rule tables and selects the suggestion provider.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	logger := infra.Logger.With("module", "api")

	tables, err := catalog.Load(cfg.Pipeline.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	logger.Info("rule tables loaded",
		"file", cfg.Pipeline.RulesFile,
		"languages", len(tables.Expansions.Languages),
		"intent_rules", len(tables.Intents),
	)

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle:  infra.Lifecycle,
			Logger:     logger,
			HTTPClient: infra.HTTPClient,
		},
		Pagination: cfg.API.Pagination,
		Tables:     tables,
		Provider:   suggest.New(&cfg.Suggest, infra.HTTPClient, logger),
		Locale:     cfg.Pipeline.Locale(),
	}, nil
}
