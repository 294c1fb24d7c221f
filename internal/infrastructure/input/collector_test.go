package input

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"URLAnalyzer/internal/source"
)

func TestCollectorConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	collector := NewCollector(NewDefaultRegistry(), zerolog.Nop())

	urls, err := collector.Collect(context.Background(),
		Input{Source: ListSourceName, Reader: strings.NewReader("a.com, b.com")},
		Input{Filename: "batch.csv", Reader: strings.NewReader("URL\nc.com\nd.com\n")},
		Input{Filename: "page.HTML", Reader: strings.NewReader(`<a href="e.com">e</a>`)},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com", " b.com", "c.com", "d.com", "e.com"}, urls)
}

func TestCollectorSkipsUnsupportedUploads(t *testing.T) {
	t.Parallel()

	collector := NewCollector(NewDefaultRegistry(), zerolog.Nop())

	urls, err := collector.Collect(context.Background(),
		Input{Filename: "report.pdf", Reader: strings.NewReader("%PDF")},
		Input{Source: ListSourceName, Reader: strings.NewReader("a.com")},
		Input{Filename: "empty.csv"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com"}, urls)
}

func TestCollectorUnknownNamedSource(t *testing.T) {
	t.Parallel()

	collector := NewCollector(NewDefaultRegistry(), zerolog.Nop())

	_, err := collector.Collect(context.Background(), Input{Source: "xml", Reader: strings.NewReader("")})
	assert.ErrorIs(t, err, source.ErrUnknownSource)
}

func TestCollectorPropagatesSourceErrors(t *testing.T) {
	t.Parallel()

	collector := NewCollector(NewDefaultRegistry(), zerolog.Nop())

	_, err := collector.Collect(context.Background(), Input{Filename: "bad.csv", Reader: strings.NewReader("name\nx\n")})
	assert.ErrorIs(t, err, ErrMissingURLColumn)
}

func TestCollectorWithoutRegistry(t *testing.T) {
	t.Parallel()

	_, err := NewCollector(nil, zerolog.Nop()).Collect(context.Background())
	assert.Error(t, err)
}

func TestCollectorExtensionsSorted(t *testing.T) {
	c := NewCollector(NewDefaultRegistry(), zerolog.Nop())
	assert.Equal(t, []string{".csv", ".htm", ".html", ".txt"}, c.Extensions())
	assert.Nil(t, NewCollector(nil, zerolog.Nop()).Extensions())
}
