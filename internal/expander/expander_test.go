package expander_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/qit/internal/expander"
	"github.com/JaimeStill/qit/internal/keyword"
)

func queries(candidates []keyword.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Query
	}
	return out
}

func TestGenerateTemplateKinds(t *testing.T) {
	catalog := expander.Catalog{
		Fallback: "en",
		Languages: map[string]expander.Language{
			"en": {
				Alphabet: []string{"a", "b"},
				Templates: []expander.Template{
					{Name: "how", Kind: expander.KindPrefix, Value: "how to"},
					{Name: "near", Kind: expander.KindSuffix, Value: "near me"},
					{Name: "vs", Kind: expander.KindPattern, Value: "{seed} vs"},
					{Name: "letters", Kind: expander.KindAlphabet},
				},
			},
		},
	}

	out := expander.New(catalog).Generate("coffee", keyword.NewLocale("en", "us"))

	assert.Equal(t, []string{
		"how to coffee",
		"coffee near me",
		"coffee vs",
		"coffee a",
		"coffee b",
	}, queries(out))

	for _, c := range out {
		assert.Equal(t, keyword.SourceRuleEngine, c.Source)
		assert.Equal(t, "coffee", c.Seed)
		assert.Equal(t, keyword.Locale{Language: "en", Region: "us"}, c.Locale)
	}
}

func TestGenerateTemplatesYieldZero(t *testing.T) {
	catalog := expander.Catalog{
		Fallback: "en",
		Languages: map[string]expander.Language{
			"en": {
				Templates: []expander.Template{
					{Name: "no-placeholder", Kind: expander.KindPattern, Value: "versus"},
					{Name: "blank-prefix", Kind: expander.KindPrefix, Value: "  "},
					{Name: "unknown", Kind: expander.Kind("mystery"), Value: "x"},
					{Name: "uk-only", Kind: expander.KindSuffix, Value: "in uk", Regions: []string{"GB"}},
					{Name: "kept", Kind: expander.KindSuffix, Value: "recipe"},
				},
			},
		},
	}

	out := expander.New(catalog).Generate("coffee", keyword.NewLocale("en", "us"))
	assert.Equal(t, []string{"coffee recipe"}, queries(out))

	out = expander.New(catalog).Generate("coffee", keyword.NewLocale("en", "gb"))
	assert.Equal(t, []string{"coffee in uk", "coffee recipe"}, queries(out))
}

func TestGenerateEmptySeed(t *testing.T) {
	e := expander.New(expander.DefaultCatalog())

	for _, seed := range []string{"", "   ", "\t\n"} {
		out := e.Generate(seed, keyword.NewLocale("en", "us"))
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	e := expander.New(expander.DefaultCatalog())
	locale := keyword.NewLocale("ar", "eg")

	first := e.Generate("كورس برمجة", locale)
	second := e.Generate("كورس برمجة", locale)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGenerateDefaultEnglish(t *testing.T) {
	out := queries(expander.New(expander.DefaultCatalog()).Generate("coffee", keyword.NewLocale("en", "us")))

	assert.Contains(t, out, "how to coffee")
	assert.Contains(t, out, "coffee near me")
	assert.Contains(t, out, "coffee vs")
	assert.Contains(t, out, "best coffee")
	assert.Contains(t, out, "coffee in usa")
	assert.NotContains(t, out, "coffee in uk")
	assert.Contains(t, out, "coffee a")
	assert.Contains(t, out, "coffee z")
	assert.Equal(t, "how to coffee", out[0])
	assert.Equal(t, "coffee z", out[len(out)-1])
}

func TestGenerateDefaultArabicEgypt(t *testing.T) {
	out := queries(expander.New(expander.DefaultCatalog()).Generate("كورس برمجة", keyword.NewLocale("ar", "eg")))

	assert.Contains(t, out, "ازاي كورس برمجة")
	assert.Contains(t, out, "كورس برمجة في مصر")
	assert.Contains(t, out, "الفرق بين كورس برمجة و")
	assert.Contains(t, out, "كورس برمجة ا")
	assert.NotContains(t, out, "كورس برمجة في السعودية")
}

func TestGenerateUnknownLanguageFallsBack(t *testing.T) {
	out := expander.New(expander.DefaultCatalog()).Generate("kaffee", keyword.NewLocale("de", "de"))

	require.NotEmpty(t, out)
	assert.Equal(t, "how to kaffee", out[0].Query)
	assert.Equal(t, keyword.Locale{Language: "de", Region: "de"}, out[0].Locale)
}

func TestGenerateOpaqueSeed(t *testing.T) {
	out := expander.New(expander.DefaultCatalog()).Generate("  c++ / {weird}  ", keyword.NewLocale("en", ""))

	require.NotEmpty(t, out)
	assert.Equal(t, "how to c++ / {weird}", out[0].Query)
	assert.Equal(t, "c++ / {weird}", out[0].Seed)
}

func TestCatalogMerge(t *testing.T) {
	c := expander.DefaultCatalog()
	c.Merge(&expander.Catalog{
		Languages: map[string]expander.Language{
			"FR": {Templates: []expander.Template{{Name: "how", Kind: expander.KindPrefix, Value: "comment"}}},
		},
	})

	assert.Equal(t, "en", c.Fallback)
	assert.Contains(t, c.Languages, "en")
	assert.Contains(t, c.Languages, "ar")

	out := expander.New(c).Generate("café", keyword.NewLocale("fr", "fr"))
	assert.Equal(t, []string{"comment café"}, queries(out))
}
