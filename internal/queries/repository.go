package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/qit/internal/catalog"
	"github.com/JaimeStill/qit/internal/classifier"
	"github.com/JaimeStill/qit/internal/expander"
	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/internal/suggest"
	"github.com/JaimeStill/qit/pkg/pagination"
)

type repo struct {
	pipeline   *Pipeline
	tables     *catalog.Tables
	defaults   keyword.Locale
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a query system implementing the System interface. The
// expander and classifier are built from tables; defaults fill the locale
// fields a request leaves empty.
func New(
	tables *catalog.Tables,
	provider suggest.Provider,
	defaults keyword.Locale,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return NewWithPipeline(
		NewPipeline(
			expander.New(tables.Expansions),
			classifier.New(tables.Intents),
			provider,
			logger,
		),
		tables,
		defaults,
		logger,
		pagination,
	)
}

// NewWithPipeline creates a query system around an existing pipeline.
func NewWithPipeline(
	pipeline *Pipeline,
	tables *catalog.Tables,
	defaults keyword.Locale,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		pipeline:   pipeline,
		tables:     tables,
		defaults:   defaults,
		logger:     logger.With("system", "queries"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxBodySize)
}

func (r *repo) Tables() *catalog.Tables {
	return r.tables
}

func (r *repo) Run(ctx context.Context, req Request) (*Result, error) {
	locale := r.resolveLocale(req)

	out, err := r.pipeline.Run(ctx, req.Seed, locale)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:                uuid.New(),
		Seed:              out.Seed,
		Locale:            locale,
		Queries:           out.Queries,
		Counts:            CountIntents(out.Queries),
		SuggestionsFailed: out.SuggestionsFailed,
		GeneratedAt:       time.Now().UTC(),
	}

	r.logger.Info("queries generated",
		"id", result.ID,
		"seed", result.Seed,
		"locale", locale.String(),
		"count", len(result.Queries),
		"suggestions_failed", result.SuggestionsFailed,
	)

	return result, nil
}

func (r *repo) resolveLocale(req Request) keyword.Locale {
	locale := keyword.NewLocale(req.Language, req.Region)
	if locale.Language == "" {
		locale.Language = r.defaults.Language
	}
	if locale.Region == "" {
		locale.Region = r.defaults.Region
	}
	return locale
}
