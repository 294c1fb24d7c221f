package classifier

import (
	"strings"
	"unicode/utf8"

	"URLAnalyzer/internal/domain"
	"URLAnalyzer/internal/ports"
)

// Classifier flags URLs that are too long or contain a suspicious keyword.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	threshold int
	keywords  []string
}

var _ ports.URLClassifier = (*Classifier)(nil)

// New builds a Classifier from the given rules.
func New(rules Rules) *Classifier {
	return &Classifier{
		threshold: rules.Threshold,
		keywords:  rules.normalizedKeywords(),
	}
}

// Threshold returns the configured length cutoff.
func (c *Classifier) Threshold() int {
	return c.threshold
}

// Keywords returns a copy of the normalized keyword set.
func (c *Classifier) Keywords() []string {
	out := make([]string, len(c.keywords))
	copy(out, c.keywords)
	return out
}

// Classify builds the record for a single URL. The input is used as given;
// trimming and skipping blanks is ClassifyBatch's job.
func (c *Classifier) Classify(raw string) domain.URLRecord {
	parts := Decompose(raw)
	length := utf8.RuneCountInString(raw)
	hasKeyword := c.containsKeyword(raw)

	class := domain.ClassificationLegitimate
	if length > c.threshold || hasKeyword {
		class = domain.ClassificationSuspicious
	}

	return domain.URLRecord{
		URL:                  raw,
		Scheme:               parts.Scheme,
		Authority:            parts.Authority,
		Path:                 parts.Path,
		Query:                parts.Query,
		Fragment:             parts.Fragment,
		Length:               length,
		HasSuspiciousKeyword: hasKeyword,
		Classification:       class,
	}
}

// ClassifyBatch trims every entry, skips blank ones and classifies the rest
// in input order.
func (c *Classifier) ClassifyBatch(raws []string) []domain.URLRecord {
	records := make([]domain.URLRecord, 0, len(raws))
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		records = append(records, c.Classify(raw))
	}
	return records
}

func (c *Classifier) containsKeyword(raw string) bool {
	lowered := strings.ToLower(raw)
	for _, kw := range c.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
