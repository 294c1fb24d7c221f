package ports

import (
	"context"
	"io"
	"time"

	"URLAnalyzer/internal/domain"
)

// URLClassifier turns raw strings into classified records.
type URLClassifier interface {
	Classify(raw string) domain.URLRecord
	ClassifyBatch(raws []string) []domain.URLRecord
}

// URLSource extracts raw URL strings from an input document
// (a comma-separated line, a CSV upload, an HTML page).
type URLSource interface {
	Name() string
	Extract(ctx context.Context, r io.Reader) ([]string, error)
}

// ChartRenderer draws the classification distribution as an image.
type ChartRenderer interface {
	RenderPie(ctx context.Context, dist domain.Distribution) ([]byte, error)
}

// ReportRecorder observes finished analyses (metrics, audit).
type ReportRecorder interface {
	RecordReport(report domain.Report)
}

// BatchAnalyzer is what the prompt and web front-ends call.
type BatchAnalyzer interface {
	Analyze(ctx context.Context, frontend string, raws []string) (domain.Report, error)
}

// Scheduler runs a job periodically until stopped.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
