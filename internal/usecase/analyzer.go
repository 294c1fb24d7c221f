package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"URLAnalyzer/internal/domain"
	"URLAnalyzer/internal/ports"
)

var _ ports.BatchAnalyzer = (*Analyzer)(nil)

// ErrNoURLs is returned when a batch holds no non-blank entries.
var ErrNoURLs = errors.New("no urls to analyze")

// AnalyzerDeps wires the classifier and the optional driven adapters.
type AnalyzerDeps struct {
	Classifier ports.URLClassifier
	Chart      ports.ChartRenderer
	Recorder   ports.ReportRecorder
	Logger     zerolog.Logger
}

// Analyzer turns a batch of raw strings into a report shared by both front-ends.
type Analyzer struct {
	classifier ports.URLClassifier
	chart      ports.ChartRenderer
	recorder   ports.ReportRecorder
	logger     zerolog.Logger
}

// NewAnalyzer constructs the use case.
func NewAnalyzer(deps AnalyzerDeps) *Analyzer {
	return &Analyzer{
		classifier: deps.Classifier,
		chart:      deps.Chart,
		recorder:   deps.Recorder,
		logger:     deps.Logger,
	}
}

// Analyze classifies raws, tallies the verdicts and renders the chart.
// frontend labels the report for metrics and logs.
func (a *Analyzer) Analyze(ctx context.Context, frontend string, raws []string) (domain.Report, error) {
	if a.classifier == nil {
		return domain.Report{}, fmt.Errorf("classifier is not configured")
	}

	records := a.classifier.ClassifyBatch(raws)
	if len(records) == 0 {
		return domain.Report{}, ErrNoURLs
	}

	report := domain.Report{
		Frontend:     frontend,
		Records:      records,
		Distribution: domain.Tally(records),
	}

	if a.chart != nil {
		png, err := a.chart.RenderPie(ctx, report.Distribution)
		if err != nil {
			return domain.Report{}, fmt.Errorf("render chart: %w", err)
		}
		report.Chart = png
	}

	if a.recorder != nil {
		a.recorder.RecordReport(report)
	}

	a.logger.Info().
		Str("frontend", frontend).
		Int("inputs", len(raws)).
		Int("records", len(records)).
		Int("suspicious", report.Distribution.Count(domain.ClassificationSuspicious)).
		Msg("analysis complete")

	return report, nil
}
