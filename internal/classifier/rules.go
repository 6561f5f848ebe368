package classifier

import (
	"slices"
	"strings"

	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/internal/normalizer"
)

// Rule assigns Intent when any of its markers match the normalized query.
// Phrases match whole token sequences, Substrings match anywhere in the key,
// and Suffixes match the end of the key.
type Rule struct {
	Intent     keyword.Intent `json:"intent" toml:"intent"`
	Phrases    []string       `json:"phrases,omitempty" toml:"phrases,omitempty"`
	Substrings []string       `json:"substrings,omitempty" toml:"substrings,omitempty"`
	Suffixes   []string       `json:"suffixes,omitempty" toml:"suffixes,omitempty"`
}

// compiled is a Rule with its markers normalized and tokenized once.
type compiled struct {
	intent     keyword.Intent
	phrases    [][]string
	substrings []string
	suffixes   []string
}

func compile(r Rule) compiled {
	c := compiled{intent: r.Intent}
	for _, p := range r.Phrases {
		if tokens := tokenize(normalizer.Key(p)); len(tokens) > 0 {
			c.phrases = append(c.phrases, tokens)
		}
	}
	for _, s := range r.Substrings {
		if k := normalizer.Key(s); k != "" {
			c.substrings = append(c.substrings, k)
		}
	}
	for _, s := range r.Suffixes {
		if k := normalizer.Key(s); k != "" {
			c.suffixes = append(c.suffixes, k)
		}
	}
	return c
}

func (c compiled) match(key string, tokens []string) bool {
	for _, p := range c.phrases {
		if containsSequence(tokens, p) {
			return true
		}
	}
	for _, s := range c.substrings {
		if strings.Contains(key, s) {
			return true
		}
	}
	for _, s := range c.suffixes {
		if strings.HasSuffix(key, s) {
			return true
		}
	}
	return false
}

func containsSequence(tokens, seq []string) bool {
	if len(seq) > len(tokens) {
		return false
	}
	for i := 0; i+len(seq) <= len(tokens); i++ {
		if slices.Equal(tokens[i:i+len(seq)], seq) {
			return true
		}
	}
	return false
}

// DefaultRules returns the built-in rule table in priority order:
// comparison, commercial, question, navigational.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent: keyword.IntentComparison,
			Phrases: []string{
				"vs", "versus", "compare", "comparison", "compared to",
				"difference between", "alternative", "alternatives", "or",
				"مقابل", "مقارنة", "الفرق بين", "الفرق", "بديل", "بدائل", "ولا", "أم",
			},
		},
		{
			Intent: keyword.IntentCommercial,
			Phrases: []string{
				"buy", "price", "prices", "pricing", "cost", "cheap", "cheapest",
				"deal", "deals", "discount", "coupon", "sale", "for sale", "order",
				"best", "review", "reviews", "free shipping", "subscription",
				"سعر", "اسعار", "أسعار", "شراء", "اشتري", "ارخص", "أرخص", "رخيص",
				"عروض", "عرض", "خصم", "تخفيضات", "كوبون", "أفضل", "افضل", "تقييم",
			},
		},
		{
			Intent: keyword.IntentQuestion,
			Phrases: []string{
				"how", "what", "why", "where", "when", "who", "which", "whose",
				"can", "does", "do", "is", "are", "should", "will",
				"كيف", "ازاي", "إزاي", "ما", "ماذا", "ماهو", "لماذا", "ليه", "ليش",
				"أين", "اين", "فين", "متى", "امتى", "إمتى", "هل", "كم", "كام",
				"ايه", "إيه", "مين",
			},
			Suffixes: []string{"?", "؟"},
		},
		{
			Intent: keyword.IntentNavigational,
			Phrases: []string{
				"near me", "nearby", "login", "log in", "sign in", "sign up",
				"official site", "official website", "website", "app",
				"youtube", "facebook", "instagram", "google", "amazon", "wikipedia",
				"tiktok", "twitter", "linkedin", "reddit", "udemy", "coursera",
				"بالقرب مني", "قريب مني", "جنبي", "الموقع الرسمي", "موقع",
				"تسجيل الدخول", "تطبيق", "يوتيوب", "فيسبوك", "انستجرام",
				"جوجل", "امازون", "أمازون", "نون", "جوميا",
			},
			Substrings: []string{"www.", ".com", ".net", ".org", "http"},
		},
	}
}
