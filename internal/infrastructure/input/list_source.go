package input

import (
	"context"
	"fmt"
	"io"
	"strings"

	"URLAnalyzer/internal/ports"
)

// ListSourceName identifies the comma-separated list source.
const ListSourceName = "list"

// ListSource splits free text on commas and line breaks.
type ListSource struct{}

var _ ports.URLSource = ListSource{}

// Name identifies the source inside the registry.
func (ListSource) Name() string {
	return ListSourceName
}

// Extract returns the raw pieces; blank pieces are kept and left to the classifier.
func (ListSource) Extract(_ context.Context, r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	return SplitList(string(raw)), nil
}

// SplitList splits text the way the prompt and the form field expect.
func SplitList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
}
