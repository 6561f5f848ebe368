// Package catalog holds the rule tables that drive query expansion and
// intent classification. Tables are data: the built-in defaults can be
// extended or replaced by a TOML rules file.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/qit/internal/classifier"
	"github.com/JaimeStill/qit/internal/expander"
	"github.com/JaimeStill/qit/internal/keyword"
)

// ErrInvalidTables is returned when a rules file cannot be read or fails
// validation.
var ErrInvalidTables = errors.New("invalid rule tables")

// Tables is the complete rule set of one pipeline.
type Tables struct {
	Expansions expander.Catalog  `json:"expansions" toml:"expansions"`
	Intents    []classifier.Rule `json:"intents" toml:"intents"`
}

// Default returns the built-in tables.
func Default() *Tables {
	return &Tables{
		Expansions: expander.DefaultCatalog(),
		Intents:    classifier.DefaultRules(),
	}
}

// Load reads a TOML rules file over the defaults. Languages declared in the
// file replace or add to the default languages; a non-empty intents list
// replaces the default rule order entirely. An empty path returns the
// defaults.
func Load(path string) (*Tables, error) {
	tables := Default()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidTables, path, err)
	}

	overlay, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	tables.Merge(overlay)
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}

// Parse decodes TOML rule tables without applying defaults.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidTables, err)
	}
	return &t, nil
}

// Merge overlays non-empty sections of overlay onto t.
func (t *Tables) Merge(overlay *Tables) {
	t.Expansions.Merge(&overlay.Expansions)
	if len(overlay.Intents) > 0 {
		t.Intents = overlay.Intents
	}
}

// Validate checks that every template and rule is well formed.
func (t *Tables) Validate() error {
	if _, ok := t.Expansions.Languages[t.Expansions.Fallback]; !ok {
		return fmt.Errorf("%w: fallback language %q not defined", ErrInvalidTables, t.Expansions.Fallback)
	}

	for code, lang := range t.Expansions.Languages {
		for i, tmpl := range lang.Templates {
			if err := validateTemplate(tmpl, lang); err != nil {
				return fmt.Errorf("%w: languages.%s.templates[%d]: %w", ErrInvalidTables, code, i, err)
			}
		}
	}

	for i, r := range t.Intents {
		if !r.Intent.Valid() {
			return fmt.Errorf("%w: intents[%d]: unknown intent %q", ErrInvalidTables, i, r.Intent)
		}
		if r.Intent == keyword.IntentInformational || r.Intent == keyword.IntentOther {
			return fmt.Errorf("%w: intents[%d]: %s is a fallback intent", ErrInvalidTables, i, r.Intent)
		}
		if len(r.Phrases)+len(r.Substrings)+len(r.Suffixes) == 0 {
			return fmt.Errorf("%w: intents[%d]: no markers", ErrInvalidTables, i)
		}
	}
	return nil
}

func validateTemplate(t expander.Template, lang expander.Language) error {
	switch t.Kind {
	case expander.KindPrefix, expander.KindSuffix:
		if t.Value == "" {
			return fmt.Errorf("%s template %q has no value", t.Kind, t.Name)
		}
	case expander.KindPattern:
		if !strings.Contains(t.Value, expander.SeedPlaceholder) {
			return fmt.Errorf("pattern template %q lacks %s", t.Name, expander.SeedPlaceholder)
		}
	case expander.KindAlphabet:
		if len(lang.Alphabet) == 0 {
			return fmt.Errorf("alphabet template %q but language has no alphabet", t.Name)
		}
	default:
		return fmt.Errorf("template %q has unknown kind %q", t.Name, t.Kind)
	}
	return nil
}
