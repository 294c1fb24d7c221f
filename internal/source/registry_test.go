package source

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct{ name string }

func (s stubSource) Name() string { return s.name }

func (s stubSource) Extract(context.Context, io.Reader) ([]string, error) {
	return []string{s.name}, nil
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(stubSource{name: "csv"}, ".csv")
	reg.Register(stubSource{name: "html"}, "html", ".HTM")

	src, err := reg.Resolve("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", src.Name())

	_, err = reg.Resolve("xml")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestRegistryResolveFile(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(stubSource{name: "csv"}, ".csv")
	reg.Register(stubSource{name: "html"}, "html", ".HTM")

	src, err := reg.ResolveFile("urls.CSV")
	require.NoError(t, err)
	assert.Equal(t, "csv", src.Name())

	src, err = reg.ResolveFile("/tmp/page.htm")
	require.NoError(t, err)
	assert.Equal(t, "html", src.Name())

	_, err = reg.ResolveFile("notes.pdf")
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = reg.ResolveFile("no-extension")
	assert.ErrorIs(t, err, ErrUnknownSource)

	assert.ElementsMatch(t, []string{".csv", ".html", ".htm"}, reg.Extensions())
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var reg Registry
	reg.Register(stubSource{name: "list"}, ".txt")

	src, err := reg.ResolveFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "list", src.Name())
}
