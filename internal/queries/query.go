// Package queries implements the query generation domain. It runs the
// expansion pipeline for a seed phrase, exposes it over HTTP and renders
// results for export.
package queries

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/qit/internal/keyword"
)

// Request carries the inputs of one pipeline run. Empty language or region
// take the configured defaults.
type Request struct {
	Seed     string `json:"seed"`
	Language string `json:"language,omitempty"`
	Region   string `json:"region,omitempty"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	ID                uuid.UUID              `json:"id"`
	Seed              string                 `json:"seed"`
	Locale            keyword.Locale         `json:"locale"`
	Queries           []keyword.Classified   `json:"queries"`
	Counts            map[keyword.Intent]int `json:"counts"`
	SuggestionsFailed bool                   `json:"suggestions_failed"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// Filters narrows a result for presentation. Nil fields are ignored.
type Filters struct {
	Intent *keyword.Intent `json:"intent,omitempty"`
	Source *keyword.Source `json:"source,omitempty"`
}

// NewFilters builds Filters from raw intent and source values. Empty values
// leave the field unset; values outside the taxonomy fail with
// ErrInvalidRequest.
func NewFilters(intent, source string) (Filters, error) {
	var f Filters

	if intent != "" {
		i := keyword.Intent(intent)
		if !i.Valid() {
			return Filters{}, fmt.Errorf("%w: unknown intent %q", ErrInvalidRequest, intent)
		}
		f.Intent = &i
	}

	if source != "" {
		s := keyword.Source(source)
		if !s.Valid() {
			return Filters{}, fmt.Errorf("%w: unknown source %q", ErrInvalidRequest, source)
		}
		f.Source = &s
	}

	return f, nil
}

// FiltersFromQuery extracts filter values from the intent and source URL
// query parameters.
func FiltersFromQuery(values url.Values) (Filters, error) {
	return NewFilters(values.Get("intent"), values.Get("source"))
}

// Apply returns the queries matching every set filter, in their original
// order.
func (f Filters) Apply(queries []keyword.Classified) []keyword.Classified {
	if f.Intent == nil && f.Source == nil {
		return queries
	}

	out := make([]keyword.Classified, 0, len(queries))
	for _, q := range queries {
		if f.Intent != nil && q.Intent != *f.Intent {
			continue
		}
		if f.Source != nil && q.Source != *f.Source {
			continue
		}
		out = append(out, q)
	}
	return out
}

// CountIntents tallies queries per intent. Every taxonomy intent is present.
func CountIntents(queries []keyword.Classified) map[keyword.Intent]int {
	counts := make(map[keyword.Intent]int, len(keyword.Intents))
	for _, intent := range keyword.Intents {
		counts[intent] = 0
	}
	for _, q := range queries {
		counts[q.Intent]++
	}
	return counts
}
