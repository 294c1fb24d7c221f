package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyOrdersByCount(t *testing.T) {
	t.Parallel()

	records := []URLRecord{
		{URL: "a", Classification: ClassificationLegitimate},
		{URL: "b", Classification: ClassificationSuspicious},
		{URL: "c", Classification: ClassificationSuspicious},
	}

	dist := Tally(records)

	require.Len(t, dist.Slices, 2)
	assert.Equal(t, 3, dist.Total)
	assert.Equal(t, ClassificationSuspicious, dist.Slices[0].Classification)
	assert.Equal(t, 2, dist.Slices[0].Count)
	assert.InDelta(t, 66.666, dist.Slices[0].Percent, 0.01)
	assert.Equal(t, ClassificationLegitimate, dist.Slices[1].Classification)
	assert.InDelta(t, 33.333, dist.Slices[1].Percent, 0.01)
}

func TestTallyTieKeepsLegitimateFirst(t *testing.T) {
	t.Parallel()

	dist := Tally([]URLRecord{
		{Classification: ClassificationSuspicious},
		{Classification: ClassificationLegitimate},
	})

	require.Len(t, dist.Slices, 2)
	assert.Equal(t, ClassificationLegitimate, dist.Slices[0].Classification)
	assert.Equal(t, ClassificationSuspicious, dist.Slices[1].Classification)
}

func TestTallyOmitsEmptyClassifications(t *testing.T) {
	t.Parallel()

	dist := Tally([]URLRecord{{Classification: ClassificationLegitimate}})

	require.Len(t, dist.Slices, 1)
	assert.Equal(t, 100.0, dist.Slices[0].Percent)
	assert.Equal(t, 0, dist.Count(ClassificationSuspicious))
	assert.Equal(t, 1, dist.Count(ClassificationLegitimate))
}

func TestTallyEmpty(t *testing.T) {
	t.Parallel()

	dist := Tally(nil)
	assert.Zero(t, dist.Total)
	assert.Empty(t, dist.Slices)
}

func TestKeywordFlag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Yes", URLRecord{HasSuspiciousKeyword: true}.KeywordFlag())
	assert.Equal(t, "No", URLRecord{}.KeywordFlag())
}
