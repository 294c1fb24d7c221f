package domain

// Classification is the verdict assigned to a single URL.
type Classification string

const (
	ClassificationSuspicious Classification = "Suspicious"
	ClassificationLegitimate Classification = "Legitimate"
)

// URLRecord is the classification result for one input string.
// It is built once by the classifier and never modified afterwards.
type URLRecord struct {
	URL                  string         `json:"url"`
	Scheme               string         `json:"scheme"`
	Authority            string         `json:"authority"`
	Path                 string         `json:"path"`
	Query                string         `json:"query"`
	Fragment             string         `json:"fragment"`
	Length               int            `json:"length"`
	HasSuspiciousKeyword bool           `json:"has_suspicious_keyword"`
	Classification       Classification `json:"classification"`
}

// KeywordFlag renders HasSuspiciousKeyword the way result tables show it.
func (r URLRecord) KeywordFlag() string {
	if r.HasSuspiciousKeyword {
		return "Yes"
	}
	return "No"
}

// Suspicious reports whether the record was flagged.
func (r URLRecord) Suspicious() bool {
	return r.Classification == ClassificationSuspicious
}
