// Package suggest fetches live autocomplete suggestions for a seed phrase
// from an external search engine.
package suggest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/qit/internal/keyword"
)

// ErrProvider marks any failure of a suggestion lookup: transport errors,
// timeouts, unexpected status codes and malformed responses.
var ErrProvider = errors.New("suggestion provider failed")

// Provider returns suggestion strings for seed in the order the remote
// service ranked them. The locale is a hint; providers may ignore it.
type Provider interface {
	Suggest(ctx context.Context, seed string, locale keyword.Locale) ([]string, error)
}

// Disabled is a Provider that never suggests anything.
type Disabled struct{}

// Suggest returns no suggestions.
func (Disabled) Suggest(context.Context, string, keyword.Locale) ([]string, error) {
	return []string{}, nil
}

// New returns the provider selected by cfg: a Google provider using hc, or
// Disabled when suggestions are turned off.
func New(cfg *Config, hc *http.Client, logger *slog.Logger) Provider {
	if !cfg.IsEnabled() {
		logger.Info("suggestions disabled")
		return Disabled{}
	}
	return NewGoogle(cfg, hc, logger)
}
