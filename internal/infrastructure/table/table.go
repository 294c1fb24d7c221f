package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"URLAnalyzer/internal/domain"
)

// Header lists the result columns in display order.
var Header = []string{
	"URL",
	"Scheme",
	"Domain",
	"Path",
	"Query Params",
	"Fragment",
	"Total Length",
	"Contains Suspicious Keywords",
	"Classification",
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
	suspiciousStyle = cellStyle.Foreground(lipgloss.Color("196"))
	legitStyle      = cellStyle.Foreground(lipgloss.Color("82"))
)

// Row converts a record into cells matching Header.
func Row(rec domain.URLRecord) []string {
	return []string{
		rec.URL,
		rec.Scheme,
		rec.Authority,
		rec.Path,
		rec.Query,
		rec.Fragment,
		strconv.Itoa(rec.Length),
		rec.KeywordFlag(),
		string(rec.Classification),
	}
}

// Rows converts records into cells, keeping their order.
func Rows(records []domain.URLRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row(rec))
	}
	return rows
}

// Render draws a bordered terminal table of the records.
func Render(records []domain.URLRecord) string {
	classCol := len(Header) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Header...).
		Rows(Rows(records)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == classCol && row >= 0 && row < len(records) {
				if records[row].Suspicious() {
					return suspiciousStyle
				}
				return legitStyle
			}
			return cellStyle
		})
	return t.String()
}

// Summary describes the distribution in one line per classification.
func Summary(dist domain.Distribution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total URLs: %d\n", dist.Total)
	for _, s := range dist.Slices {
		fmt.Fprintf(&b, "  %-10s %d (%.1f%%)\n", s.Classification, s.Count, s.Percent)
	}
	return b.String()
}
