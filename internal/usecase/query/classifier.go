package query

import (
	"regexp"
	"strings"

	"github.com/faunadex/faunadex/internal/domain"
)

// rule pairs a pattern with the intent it resolves to.
type rule struct {
	pattern *regexp.Regexp
	intent  domain.Intent
}

// rules is evaluated in order with first-match-wins semantics. The order is
// an observable contract (a query containing both "wild" and "endangered"
// resolves to WildAnimals), so do not reorder.
var rules = []rule{
	{regexp.MustCompile(`wild|untamed|feral`), domain.WildAnimals},
	{regexp.MustCompile(`tame|domestic|domesticated|pet`), domain.TameAnimals},
	{regexp.MustCompile(`easiest.*train|most.*trainable|easy.*tame`), domain.MostTrainable},
	{regexp.MustCompile(`hardest.*train|least.*trainable|hard.*tame`), domain.LeastTrainable},
	{regexp.MustCompile(`most.*endangered|extinction|rare`), domain.MostEndangered},
	{regexp.MustCompile(`least.*endangered|safe|common`), domain.LeastEndangered},
	{regexp.MustCompile(`all.*animals|list.*all|show.*all`), domain.AllAnimals},
}

// Classify maps free text to an intent. Normalization is lowercase plus
// surrounding-whitespace trim only; patterns match anywhere in the text.
// Total: every input, including the empty string, yields an intent.
func Classify(text string) domain.Intent {
	text = strings.ToLower(strings.TrimSpace(text))

	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.intent
		}
	}
	return domain.GeneralSearch
}
