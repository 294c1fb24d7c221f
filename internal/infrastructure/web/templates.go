package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"URLAnalyzer/internal/domain"
	"URLAnalyzer/internal/infrastructure/chart"
	"URLAnalyzer/internal/infrastructure/table"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html.tmpl").
		Funcs(template.FuncMap{
			"percent": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
			"isLast":  func(i int, header []string) bool { return i == len(header)-1 },
		}).
		ParseFS(templatesFS, "templates/index.html.tmpl"),
)

type resultRow struct {
	Cells      []string
	Suspicious bool
}

type pageData struct {
	URLsInput    string
	Accept       string
	Error        string
	Notice       string
	Header       []string
	Rows         []resultRow
	Distribution domain.Distribution
	ChartURI     template.URL
}

func newPageData(urlsInput string, extensions []string) pageData {
	return pageData{
		URLsInput: urlsInput,
		Accept:    strings.Join(extensions, ","),
		Header:    table.Header,
	}
}

// withReport fills the results section from a finished analysis.
func (d pageData) withReport(report domain.Report) pageData {
	d.Rows = make([]resultRow, 0, len(report.Records))
	for _, rec := range report.Records {
		d.Rows = append(d.Rows, resultRow{Cells: table.Row(rec), Suspicious: rec.Suspicious()})
	}
	d.Distribution = report.Distribution
	if len(report.Chart) > 0 {
		// The data URI is produced locally from PNG bytes.
		d.ChartURI = template.URL(chart.DataURI(report.Chart))
	}
	return d
}

func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}
