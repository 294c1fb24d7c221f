package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"URLAnalyzer/internal/ports"
	"URLAnalyzer/internal/source"
)

// Input is one document to pull URLs from. Source names the registered
// source; when empty the source is picked from Filename's extension.
type Input struct {
	Source   string
	Filename string
	Reader   io.Reader
}

// Collector pulls raw URLs out of several inputs through the source registry.
type Collector struct {
	registry *source.Registry
	logger   zerolog.Logger
}

// NewCollector wires the registry of known sources.
func NewCollector(reg *source.Registry, logger zerolog.Logger) *Collector {
	return &Collector{registry: reg, logger: logger}
}

// NewDefaultRegistry registers the list, CSV and HTML sources.
func NewDefaultRegistry() *source.Registry {
	reg := source.NewRegistry()
	reg.Register(ListSource{}, ".txt")
	reg.Register(CSVSource{}, ".csv")
	reg.Register(HTMLSource{}, ".html", ".htm")
	return reg
}

// Collect extracts URLs from each input and concatenates them in input order.
// Uploads with an unsupported extension are skipped.
func (c *Collector) Collect(ctx context.Context, inputs ...Input) ([]string, error) {
	if c.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	var aggregated []string
	for _, in := range inputs {
		if in.Reader == nil {
			continue
		}

		src, err := c.resolve(in)
		if errors.Is(err, source.ErrUnknownSource) && in.Source == "" {
			c.logger.Warn().Str("filename", in.Filename).Msg("skipping upload with unsupported extension")
			continue
		}
		if err != nil {
			return nil, err
		}

		urls, err := src.Extract(ctx, in.Reader)
		if err != nil {
			return nil, fmt.Errorf("%s source: %w", src.Name(), err)
		}

		c.logger.Debug().
			Str("source", src.Name()).
			Str("filename", in.Filename).
			Int("count", len(urls)).
			Msg("input produced urls")
		aggregated = append(aggregated, urls...)
	}

	return aggregated, nil
}

// Extensions lists the file extensions the collector accepts, sorted.
func (c *Collector) Extensions() []string {
	if c == nil || c.registry == nil {
		return nil
	}
	exts := c.registry.Extensions()
	sort.Strings(exts)
	return exts
}

func (c *Collector) resolve(in Input) (ports.URLSource, error) {
	if in.Source != "" {
		return c.registry.Resolve(in.Source)
	}
	return c.registry.ResolveFile(in.Filename)
}
