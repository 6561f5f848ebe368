// Package classifier assigns each normalized query exactly one intent by
// evaluating an ordered rule table against the query text. The first
// matching rule wins; queries no rule matches are informational, and queries
// without any letters or digits are other.
package classifier

import (
	"strings"
	"unicode"

	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/internal/normalizer"
)

// Classifier evaluates rules in slice order. It holds no mutable state and
// is safe for concurrent use.
type Classifier struct {
	rules    []Rule
	compiled []compiled
}

// New creates a Classifier. Rules with an intent outside the taxonomy are
// skipped.
func New(rules []Rule) *Classifier {
	c := &Classifier{}
	for _, r := range rules {
		if !r.Intent.Valid() {
			continue
		}
		c.rules = append(c.rules, r)
		c.compiled = append(c.compiled, compile(r))
	}
	return c
}

// Rules returns the active rules in priority order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Intent classifies a single query text.
func (c *Classifier) Intent(text string) keyword.Intent {
	key := normalizer.Key(text)
	tokens := tokenize(key)
	if len(tokens) == 0 {
		return keyword.IntentOther
	}

	for _, r := range c.compiled {
		if r.match(key, tokens) {
			return r.intent
		}
	}

	return keyword.IntentInformational
}

// Classify returns one Classified record per input record, in input order.
func (c *Classifier) Classify(queries []keyword.Normalized) []keyword.Classified {
	out := make([]keyword.Classified, len(queries))
	for i, q := range queries {
		out[i] = keyword.Classified{
			Normalized: q,
			Intent:     c.Intent(q.Query),
		}
	}
	return out
}

func tokenize(key string) []string {
	return strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
}
