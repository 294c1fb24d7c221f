package input

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"URLAnalyzer/internal/ports"
)

// CSVSourceName identifies the CSV column source.
const CSVSourceName = "csv"

// URLColumn is the header a CSV upload must carry.
const URLColumn = "URL"

// ErrMissingURLColumn is returned when the CSV header has no URL column.
var ErrMissingURLColumn = errors.New("csv header has no URL column")

// CSVSource reads the URL column of a CSV document with a header row.
type CSVSource struct{}

var _ ports.URLSource = CSVSource{}

// Name identifies the source inside the registry.
func (CSVSource) Name() string {
	return CSVSourceName
}

// Extract returns the URL column in row order.
func (CSVSource) Extract(ctx context.Context, r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingURLColumn
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	column := -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if strings.TrimSpace(name) == URLColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, ErrMissingURLColumn
	}

	var urls []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		if column < len(record) {
			urls = append(urls, record[column])
		} else {
			urls = append(urls, "")
		}
	}

	return urls, nil
}
