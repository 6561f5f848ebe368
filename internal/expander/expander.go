// Package expander generates candidate queries from a seed phrase by
// applying an ordered catalog of linguistic templates: interrogative
// prefixes, prepositions, comparison patterns, commercial markers and
// alphabet suffixes. Generation is pure and deterministic.
package expander

import (
	"strings"

	"github.com/JaimeStill/qit/internal/keyword"
)

// Expander applies a Catalog to seeds.
type Expander struct {
	catalog Catalog
}

// New creates an Expander over catalog.
func New(catalog Catalog) *Expander {
	return &Expander{catalog: catalog}
}

// Catalog returns the catalog the expander applies.
func (e *Expander) Catalog() Catalog {
	return e.catalog
}

// Generate returns every template result for seed in catalog order,
// without deduplication. An empty seed yields an empty slice.
func (e *Expander) Generate(seed string, locale keyword.Locale) []keyword.Candidate {
	seed = strings.TrimSpace(seed)
	out := []keyword.Candidate{}
	if seed == "" {
		return out
	}

	lang, ok := e.catalog.Lookup(locale.Language)
	if !ok {
		return out
	}

	emit := func(query string) {
		out = append(out, keyword.Candidate{
			Query:  query,
			Source: keyword.SourceRuleEngine,
			Seed:   seed,
			Locale: locale,
		})
	}

	for _, t := range lang.Templates {
		if !t.AppliesTo(locale.Region) {
			continue
		}
		if t.Kind == KindAlphabet {
			for _, letter := range lang.Alphabet {
				emit(seed + " " + letter)
			}
			continue
		}
		if query, ok := apply(t, seed); ok {
			emit(query)
		}
	}

	return out
}

func apply(t Template, seed string) (string, bool) {
	value := strings.TrimSpace(t.Value)

	switch t.Kind {
	case KindPrefix:
		if value == "" {
			return "", false
		}
		return value + " " + seed, true
	case KindSuffix:
		if value == "" {
			return "", false
		}
		return seed + " " + value, true
	case KindPattern:
		if !strings.Contains(value, SeedPlaceholder) {
			return "", false
		}
		return strings.ReplaceAll(value, SeedPlaceholder, seed), true
	default:
		return "", false
	}
}
