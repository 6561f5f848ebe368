package expander

import (
	"slices"
	"strings"
)

// Kind selects how a template combines its value with the seed.
type Kind string

const (
	// KindPrefix yields "<value> <seed>".
	KindPrefix Kind = "prefix"
	// KindSuffix yields "<seed> <value>".
	KindSuffix Kind = "suffix"
	// KindPattern substitutes the seed for SeedPlaceholder in the value.
	KindPattern Kind = "pattern"
	// KindAlphabet yields "<seed> <letter>" for every letter of the
	// language alphabet.
	KindAlphabet Kind = "alphabet"
)

// SeedPlaceholder marks where a pattern template inserts the seed.
const SeedPlaceholder = "{seed}"

// Template is one entry of an expansion catalog.
type Template struct {
	Name  string `json:"name" toml:"name"`
	Kind  Kind   `json:"kind" toml:"kind"`
	Value string `json:"value,omitempty" toml:"value,omitempty"`
	// Regions restricts the template to the listed region codes.
	// Empty applies everywhere.
	Regions []string `json:"regions,omitempty" toml:"regions,omitempty"`
}

// AppliesTo reports whether the template is enabled for region.
func (t Template) AppliesTo(region string) bool {
	if len(t.Regions) == 0 {
		return true
	}
	return slices.ContainsFunc(t.Regions, func(r string) bool {
		return strings.EqualFold(r, region)
	})
}

// Language holds the ordered templates and alphabet of one language.
type Language struct {
	Alphabet  []string   `json:"alphabet" toml:"alphabet"`
	Templates []Template `json:"templates" toml:"templates"`
}

// Catalog maps language codes to their templates. Fallback names the
// language used for codes the catalog does not know.
type Catalog struct {
	Fallback  string              `json:"fallback" toml:"fallback"`
	Languages map[string]Language `json:"languages" toml:"languages"`
}

// Lookup returns the templates for language, falling back to the catalog's
// fallback language.
func (c Catalog) Lookup(language string) (Language, bool) {
	if lang, ok := c.Languages[strings.ToLower(language)]; ok {
		return lang, true
	}
	lang, ok := c.Languages[c.Fallback]
	return lang, ok
}

// Merge overlays the languages defined in overlay onto c.
func (c *Catalog) Merge(overlay *Catalog) {
	if overlay.Fallback != "" {
		c.Fallback = overlay.Fallback
	}
	if len(overlay.Languages) == 0 {
		return
	}
	merged := make(map[string]Language, len(c.Languages)+len(overlay.Languages))
	for code, lang := range c.Languages {
		merged[code] = lang
	}
	for code, lang := range overlay.Languages {
		merged[strings.ToLower(code)] = lang
	}
	c.Languages = merged
}

func prefix(name, value string, regions ...string) Template {
	return Template{Name: name, Kind: KindPrefix, Value: value, Regions: regions}
}

func suffix(name, value string, regions ...string) Template {
	return Template{Name: name, Kind: KindSuffix, Value: value, Regions: regions}
}

func pattern(name, value string, regions ...string) Template {
	return Template{Name: name, Kind: KindPattern, Value: value, Regions: regions}
}

func alphabet() Template {
	return Template{Name: "alphabet", Kind: KindAlphabet}
}

// DefaultCatalog returns the built-in English and Arabic catalogs.
// English is the fallback language.
func DefaultCatalog() Catalog {
	return Catalog{
		Fallback: "en",
		Languages: map[string]Language{
			"en": english(),
			"ar": arabic(),
		},
	}
}

func english() Language {
	return Language{
		Alphabet: strings.Split("abcdefghijklmnopqrstuvwxyz", ""),
		Templates: []Template{
			prefix("question-how", "how to"),
			prefix("question-what", "what is"),
			prefix("question-why", "why"),
			prefix("question-where", "where to"),
			prefix("question-when", "when to"),
			prefix("question-can", "can"),
			suffix("preposition-for", "for"),
			suffix("preposition-with", "with"),
			suffix("preposition-without", "without"),
			suffix("preposition-near", "near me"),
			suffix("preposition-in-us", "in usa", "us"),
			suffix("preposition-in-uk", "in uk", "gb", "uk"),
			pattern("comparison-vs", "{seed} vs"),
			pattern("comparison-or", "{seed} or"),
			pattern("comparison-difference", "difference between {seed} and"),
			pattern("comparison-alternatives", "{seed} alternatives"),
			prefix("commercial-best", "best"),
			prefix("commercial-buy", "buy"),
			prefix("commercial-cheap", "cheap"),
			suffix("commercial-price", "price"),
			suffix("commercial-cost", "cost"),
			suffix("commercial-review", "review"),
			suffix("commercial-deals", "deals"),
			suffix("commercial-free", "free"),
			suffix("commercial-online", "online"),
			alphabet(),
		},
	}
}

func arabic() Language {
	return Language{
		Alphabet: []string{
			"ا", "ب", "ت", "ث", "ج", "ح", "خ", "د", "ذ", "ر", "ز", "س", "ش", "ص",
			"ض", "ط", "ظ", "ع", "غ", "ف", "ق", "ك", "ل", "م", "ن", "ه", "و", "ي",
		},
		Templates: []Template{
			prefix("question-how", "كيف"),
			prefix("question-how-eg", "ازاي", "eg"),
			prefix("question-what", "ما هو"),
			prefix("question-why", "لماذا"),
			prefix("question-why-eg", "ليه", "eg"),
			prefix("question-where", "أين"),
			prefix("question-where-eg", "فين", "eg"),
			prefix("question-when", "متى"),
			prefix("question-yes-no", "هل"),
			suffix("preposition-in", "في"),
			suffix("preposition-for", "ل"),
			suffix("preposition-with", "مع"),
			suffix("preposition-without", "بدون"),
			suffix("preposition-from", "من"),
			suffix("preposition-near", "بالقرب مني"),
			suffix("preposition-in-egypt", "في مصر", "eg"),
			suffix("preposition-in-cairo", "في القاهرة", "eg"),
			suffix("preposition-in-saudi", "في السعودية", "sa"),
			pattern("comparison-vs", "{seed} مقابل"),
			pattern("comparison-or-eg", "{seed} ولا", "eg"),
			pattern("comparison-difference", "الفرق بين {seed} و"),
			pattern("comparison-alternatives", "بديل {seed}"),
			prefix("commercial-best", "أفضل"),
			prefix("commercial-price", "سعر"),
			prefix("commercial-buy", "شراء"),
			prefix("commercial-cheapest", "ارخص"),
			suffix("commercial-offers", "عروض"),
			suffix("commercial-discount", "خصم"),
			suffix("commercial-free", "مجانا"),
			suffix("commercial-online", "اونلاين"),
			suffix("commercial-beginners", "للمبتدئين"),
			alphabet(),
		},
	}
}
