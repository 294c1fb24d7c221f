package classifier

import "strings"

// DefaultThreshold is the length above which a URL is flagged regardless of content.
const DefaultThreshold = 75

// DefaultKeywords are matched case-insensitively anywhere in the URL.
var DefaultKeywords = []string{"login", "secure", "verify", "account", "free", "update", "payment", "bank", "auth"}

// Rules holds the heuristics a Classifier applies.
type Rules struct {
	Threshold int
	Keywords  []string
}

// DefaultRules returns the stock threshold and keyword set.
func DefaultRules() Rules {
	keywords := make([]string, len(DefaultKeywords))
	copy(keywords, DefaultKeywords)
	return Rules{Threshold: DefaultThreshold, Keywords: keywords}
}

// normalizedKeywords lower-cases the keyword set and drops blanks, since an
// empty keyword would match every URL.
func (r Rules) normalizedKeywords() []string {
	out := make([]string, 0, len(r.Keywords))
	for _, kw := range r.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		out = append(out, kw)
	}
	return out
}
