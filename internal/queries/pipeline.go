package queries

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/qit/internal/classifier"
	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/internal/normalizer"
	"github.com/JaimeStill/qit/internal/suggest"
)

// Expander generates rule-based candidates for a seed.
type Expander interface {
	Generate(seed string, locale keyword.Locale) []keyword.Candidate
}

// Output is the product of one pipeline pass.
type Output struct {
	Seed              string
	Queries           []keyword.Classified
	SuggestionsFailed bool
}

// Pipeline composes expansion, suggestion lookup, normalization and
// classification. It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	expander   Expander
	classifier *classifier.Classifier
	provider   suggest.Provider
	logger     *slog.Logger
}

// NewPipeline creates a Pipeline. A nil provider contributes no suggestions.
func NewPipeline(
	exp Expander,
	cls *classifier.Classifier,
	provider suggest.Provider,
	logger *slog.Logger,
) *Pipeline {
	if provider == nil {
		provider = suggest.Disabled{}
	}
	return &Pipeline{
		expander:   exp,
		classifier: cls,
		provider:   provider,
		logger:     logger.With("system", "pipeline"),
	}
}

// Run generates classified queries for seed. The expander and the provider
// run concurrently; their results are merged expander first so duplicates
// resolve in favour of rule-engine records. A provider failure is logged and
// treated as zero suggestions.
func (p *Pipeline) Run(ctx context.Context, seed string, locale keyword.Locale) (*Output, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, ErrInvalidSeed
	}

	var (
		expanded    []keyword.Candidate
		suggestions []string
		failed      bool
	)

	var g errgroup.Group

	g.Go(func() error {
		expanded = p.expander.Generate(seed, locale)
		return nil
	})

	g.Go(func() error {
		s, err := p.provider.Suggest(ctx, seed, locale)
		if err != nil {
			p.logger.WarnContext(ctx, "suggestions unavailable",
				"seed", seed,
				"locale", locale.String(),
				"error", err,
			)
			failed = true
			return nil
		}
		suggestions = s
		return nil
	})

	_ = g.Wait()

	merged := make([]keyword.Candidate, 0, len(expanded)+len(suggestions))
	merged = append(merged, expanded...)
	merged = append(merged, keyword.Suggestions(seed, locale, suggestions)...)

	normalized := normalizer.Deduplicate(merged)
	classified := p.classifier.Classify(normalized)

	p.logger.DebugContext(ctx, "pipeline complete",
		"seed", seed,
		"expanded", len(expanded),
		"suggested", len(suggestions),
		"kept", len(classified),
	)

	return &Output{
		Seed:              seed,
		Queries:           classified,
		SuggestionsFailed: failed,
	}, nil
}
