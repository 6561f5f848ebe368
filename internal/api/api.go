// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/qit/internal/catalog"
	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/internal/expander"
	"github.com/JaimeStill/qit/internal/infrastructure"
	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/pkg/lifecycle"
	"github.com/JaimeStill/qit/pkg/middleware"
	"github.com/JaimeStill/qit/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// It fails when the configured rules file cannot be loaded.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := NewDomain(runtime)

	infra.Lifecycle.Check("rules", expandsDefaultLocale(domain.Queries.Tables(), runtime.Locale))

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}

// readinessSeed only needs to be non-empty; templates treat the seed as
// opaque text.
const readinessSeed = "qit"

// expandsDefaultLocale reports ready once the loaded tables expand a seed
// for the configured default locale. A rules file that empties the
// default language's templates, or gates them all to other regions,
// leaves the service unready.
func expandsDefaultLocale(tables *catalog.Tables, locale keyword.Locale) lifecycle.ReadinessFunc {
	exp := expander.New(tables.Expansions)
	return func() bool {
		return len(exp.Generate(readinessSeed, locale)) > 0
	}
}
