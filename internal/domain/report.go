package domain

import "sort"

// classificationOrder breaks ties between equal slice counts.
var classificationOrder = map[Classification]int{
	ClassificationLegitimate: 0,
	ClassificationSuspicious: 1,
}

// Slice is one entry of the classification distribution.
type Slice struct {
	Classification Classification `json:"classification"`
	Count          int            `json:"count"`
	Percent        float64        `json:"percent"`
}

// Distribution aggregates how many records fell into each classification.
type Distribution struct {
	Total  int     `json:"total"`
	Slices []Slice `json:"slices"`
}

// Tally counts records per classification. Slices are ordered by count,
// largest first; classifications with no records are left out.
func Tally(records []URLRecord) Distribution {
	counts := make(map[Classification]int, len(classificationOrder))
	for _, rec := range records {
		counts[rec.Classification]++
	}

	dist := Distribution{Total: len(records)}
	for class, count := range counts {
		dist.Slices = append(dist.Slices, Slice{
			Classification: class,
			Count:          count,
			Percent:        float64(count) * 100 / float64(len(records)),
		})
	}

	sort.Slice(dist.Slices, func(i, j int) bool {
		a, b := dist.Slices[i], dist.Slices[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return classificationOrder[a.Classification] < classificationOrder[b.Classification]
	})

	return dist
}

// Count returns the number of records with the given classification.
func (d Distribution) Count(class Classification) int {
	for _, s := range d.Slices {
		if s.Classification == class {
			return s.Count
		}
	}
	return 0
}

// Report is the outcome of analysing one batch of URLs.
type Report struct {
	Frontend     string
	Records      []URLRecord
	Distribution Distribution
	Chart        []byte
}
