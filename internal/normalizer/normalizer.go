// Package normalizer derives comparison keys for queries and removes
// duplicate candidates while preserving first-seen order.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/JaimeStill/qit/internal/keyword"
)

// tatweel is the Arabic elongation character. It is a letter modifier, not a
// combining mark, so it is removed explicitly.
const tatweel = 'ـ'

// Key returns the normalization key for text: combining marks and tatweel
// removed, case folded, trimmed, with internal whitespace collapsed to a
// single space.
func Key(text string) string {
	// Transformers and casers carry state; build them per call.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == tatweel })),
		norm.NFC,
	)

	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	folded := cases.Fold().String(stripped)
	return strings.Join(strings.Fields(folded), " ")
}

// Deduplicate walks candidates in order and keeps the first candidate for
// each key. Later candidates with an already seen key are dropped entirely.
func Deduplicate(candidates []keyword.Candidate) []keyword.Normalized {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]keyword.Normalized, 0, len(candidates))

	for _, c := range candidates {
		key := Key(c.Query)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, keyword.Normalized{Candidate: c, Key: key})
	}

	return out
}

// Candidates maps normalized records back to their candidate shape.
func Candidates(normalized []keyword.Normalized) []keyword.Candidate {
	out := make([]keyword.Candidate, len(normalized))
	for i, n := range normalized {
		out[i] = n.Candidate
	}
	return out
}
