// Package keyword defines the records that flow through the query pipeline.
// A Candidate is produced by the expander or the suggestion provider, the
// normalizer turns candidates into Normalized records, and the classifier
// produces the terminal Classified records returned to callers.
package keyword

import "strings"

// Source identifies which component produced a candidate.
type Source string

const (
	SourceRuleEngine         Source = "rule-engine"
	SourceExternalSuggestion Source = "external-suggestion"
)

// Valid reports whether s is one of the defined sources.
func (s Source) Valid() bool {
	return s == SourceRuleEngine || s == SourceExternalSuggestion
}

// Intent is the inferred search purpose of a query.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentCommercial    Intent = "commercial"
	IntentNavigational  Intent = "navigational"
	IntentComparison    Intent = "comparison"
	IntentQuestion      Intent = "question"
	IntentOther         Intent = "other"
)

// Intents lists the closed intent taxonomy in display order.
var Intents = []Intent{
	IntentInformational,
	IntentCommercial,
	IntentNavigational,
	IntentComparison,
	IntentQuestion,
	IntentOther,
}

// Valid reports whether i is part of the taxonomy.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// Locale is a language/region pair, e.g. ar/eg.
type Locale struct {
	Language string `json:"language" toml:"language"`
	Region   string `json:"region" toml:"region"`
}

// NewLocale returns a Locale with trimmed, lowercased codes.
func NewLocale(language, region string) Locale {
	return Locale{
		Language: strings.ToLower(strings.TrimSpace(language)),
		Region:   strings.ToLower(strings.TrimSpace(region)),
	}
}

// IsZero reports whether neither code is set.
func (l Locale) IsZero() bool {
	return l.Language == "" && l.Region == ""
}

func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "-" + l.Region
}

// Candidate is a query produced by the expander or the suggestion provider,
// before deduplication or classification.
type Candidate struct {
	Query  string `json:"query"`
	Source Source `json:"source"`
	Seed   string `json:"seed"`
	Locale Locale `json:"locale"`
}

// Normalized is a Candidate that survived deduplication. Key is used only
// for equality; Query keeps the display text of the first occurrence.
type Normalized struct {
	Candidate
	Key string `json:"key"`
}

// Classified is a Normalized record with exactly one intent.
type Classified struct {
	Normalized
	Intent Intent `json:"intent"`
}

// Suggestions wraps raw provider strings into candidates tagged as
// external suggestions, preserving their order.
func Suggestions(seed string, locale Locale, suggestions []string) []Candidate {
	candidates := make([]Candidate, 0, len(suggestions))
	for _, s := range suggestions {
		candidates = append(candidates, Candidate{
			Query:  s,
			Source: SourceExternalSuggestion,
			Seed:   seed,
			Locale: locale,
		})
	}
	return candidates
}
