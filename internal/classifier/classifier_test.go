package classifier

import (
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"URLAnalyzer/internal/domain"
)

func newDefault() *Classifier {
	return New(DefaultRules())
}

func TestClassifyPlainURLIsLegitimate(t *testing.T) {
	t.Parallel()

	raw := "http://example.com/page"
	rec := newDefault().Classify(raw)

	assert.Equal(t, raw, rec.URL)
	assert.Equal(t, "http", rec.Scheme)
	assert.Equal(t, "example.com", rec.Authority)
	assert.Equal(t, "/page", rec.Path)
	assert.Empty(t, rec.Query)
	assert.Empty(t, rec.Fragment)
	assert.Equal(t, len(raw), rec.Length)
	assert.False(t, rec.HasSuspiciousKeyword)
	assert.Equal(t, domain.ClassificationLegitimate, rec.Classification)
}

func TestClassifyKeywordIsSuspicious(t *testing.T) {
	t.Parallel()

	rec := newDefault().Classify("http://example.com/login")

	assert.True(t, rec.HasSuspiciousKeyword)
	assert.Equal(t, domain.ClassificationSuspicious, rec.Classification)
	assert.Equal(t, "Yes", rec.KeywordFlag())
}

func TestClassifyLengthThreshold(t *testing.T) {
	t.Parallel()

	c := newDefault()
	prefix := "http://example.com/"

	atLimit := prefix + strings.Repeat("a", DefaultThreshold-len(prefix))
	require.Len(t, atLimit, 75)
	assert.Equal(t, domain.ClassificationLegitimate, c.Classify(atLimit).Classification)

	overLimit := atLimit + "a"
	require.Len(t, overLimit, 76)
	rec := c.Classify(overLimit)
	assert.False(t, rec.HasSuspiciousKeyword)
	assert.Equal(t, 76, rec.Length)
	assert.Equal(t, domain.ClassificationSuspicious, rec.Classification)
}

func TestClassifyMultipleKeywords(t *testing.T) {
	t.Parallel()

	rec := newDefault().Classify("https://example.com/bank/secure/verify?id=1&ref=2")

	assert.Equal(t, "https", rec.Scheme)
	assert.Equal(t, "example.com", rec.Authority)
	assert.Equal(t, "/bank/secure/verify", rec.Path)
	assert.Equal(t, "id=1&ref=2", rec.Query)
	assert.True(t, rec.HasSuspiciousKeyword)
	assert.Equal(t, domain.ClassificationSuspicious, rec.Classification)
}

func TestClassifySchemelessInput(t *testing.T) {
	t.Parallel()

	rec := newDefault().Classify("example.com/login")

	assert.Empty(t, rec.Scheme)
	assert.Empty(t, rec.Authority)
	assert.Equal(t, "example.com/login", rec.Path)
	assert.Equal(t, domain.ClassificationSuspicious, rec.Classification)
}

func TestClassifyKeywordCaseAndSubstring(t *testing.T) {
	t.Parallel()

	c := newDefault()
	cases := []string{
		"HTTP://EXAMPLE.COM/LOGIN",
		"https://secureus.com",
		"https://example.com/relogin",
		"https://example.com/?next=Payment",
		"https://example.com/#oauth",
	}
	for _, raw := range cases {
		rec := c.Classify(raw)
		assert.True(t, rec.HasSuspiciousKeyword, raw)
		assert.Equal(t, domain.ClassificationSuspicious, rec.Classification, raw)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	c := newDefault()
	raw := "https://user:pw@example.com:8443/a/b?x=1#frag"
	assert.Equal(t, c.Classify(raw), c.Classify(raw))
}

func TestClassifyEmptyString(t *testing.T) {
	t.Parallel()

	rec := newDefault().Classify("")
	assert.Equal(t, domain.URLRecord{Classification: domain.ClassificationLegitimate}, rec)
}

func TestClassifyCountsCharactersNotBytes(t *testing.T) {
	t.Parallel()

	raw := "http://пример.рф/путь"
	rec := newDefault().Classify(raw)
	assert.Equal(t, utf8.RuneCountInString(raw), rec.Length)
	assert.Less(t, rec.Length, len(raw))
}

func TestClassifyCustomRules(t *testing.T) {
	t.Parallel()

	c := New(Rules{Threshold: 10, Keywords: []string{"  Promo ", ""}})

	assert.Equal(t, 10, c.Threshold())
	assert.Equal(t, []string{"promo"}, c.Keywords())
	assert.Equal(t, domain.ClassificationSuspicious, c.Classify("http://a.com/xyz").Classification)
	assert.Equal(t, domain.ClassificationLegitimate, c.Classify("a.com/x").Classification)
	assert.True(t, c.Classify("x.io/PROMO").HasSuspiciousKeyword)
	assert.False(t, c.Classify("x.io/login").HasSuspiciousKeyword)
}

func TestClassifyBatchDropsBlanksAndKeepsOrder(t *testing.T) {
	t.Parallel()

	records := newDefault().ClassifyBatch([]string{
		"http://b.com",
		"  ",
		"http://a.com/login",
		"",
		"\thttp://c.com \n",
	})

	require.Len(t, records, 3)
	assert.Equal(t, "http://b.com", records[0].URL)
	assert.Equal(t, "http://a.com/login", records[1].URL)
	assert.Equal(t, "http://c.com", records[2].URL)
	assert.Equal(t, len("http://c.com"), records[2].Length)
}

func TestClassifyBatchOnlyBlanks(t *testing.T) {
	t.Parallel()

	records := newDefault().ClassifyBatch([]string{"", "  ", "http://a.com"})
	require.Len(t, records, 1)
	assert.Equal(t, "http://a.com", records[0].URL)

	assert.Empty(t, newDefault().ClassifyBatch([]string{" ", "\t"}))
	assert.Empty(t, newDefault().ClassifyBatch(nil))
}

func TestClassificationInvariant(t *testing.T) {
	t.Parallel()

	c := newDefault()
	property := func(raw string) bool {
		rec := c.Classify(raw)
		if rec.URL != raw || rec.Length != utf8.RuneCountInString(raw) {
			return false
		}
		hasKeyword := false
		for _, kw := range DefaultKeywords {
			if strings.Contains(strings.ToLower(raw), kw) {
				hasKeyword = true
			}
		}
		if rec.HasSuspiciousKeyword != hasKeyword {
			return false
		}
		want := domain.ClassificationLegitimate
		if rec.Length > DefaultThreshold || hasKeyword {
			want = domain.ClassificationSuspicious
		}
		return rec.Classification == want
	}
	require.NoError(t, quick.Check(property, &quick.Config{MaxCount: 500}))
}

func TestLongInputAlwaysSuspicious(t *testing.T) {
	t.Parallel()

	c := newDefault()
	property := func(raw string) bool {
		padded := raw + strings.Repeat("x", DefaultThreshold+1)
		return c.Classify(padded).Classification == domain.ClassificationSuspicious
	}
	require.NoError(t, quick.Check(property, nil))
}
