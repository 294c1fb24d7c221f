package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"URLAnalyzer/internal/classifier"
	"URLAnalyzer/internal/domain"
)

type fakeChart struct {
	calls int
	got   domain.Distribution
	err   error
}

func (f *fakeChart) RenderPie(_ context.Context, dist domain.Distribution) ([]byte, error) {
	f.calls++
	f.got = dist
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png"), nil
}

type fakeRecorder struct {
	reports []domain.Report
}

func (f *fakeRecorder) RecordReport(report domain.Report) {
	f.reports = append(f.reports, report)
}

func TestAnalyzeBuildsReport(t *testing.T) {
	t.Parallel()

	chart := &fakeChart{}
	recorder := &fakeRecorder{}
	analyzer := NewAnalyzer(AnalyzerDeps{
		Classifier: classifier.New(classifier.DefaultRules()),
		Chart:      chart,
		Recorder:   recorder,
		Logger:     zerolog.Nop(),
	})

	report, err := analyzer.Analyze(context.Background(), "prompt", []string{
		"http://example.com/page", " ", "http://example.com/login",
	})
	require.NoError(t, err)

	require.Len(t, report.Records, 2)
	assert.Equal(t, "http://example.com/page", report.Records[0].URL)
	assert.Equal(t, "http://example.com/login", report.Records[1].URL)
	assert.Equal(t, 2, report.Distribution.Total)
	assert.Equal(t, 1, report.Distribution.Count(domain.ClassificationSuspicious))
	assert.Equal(t, []byte("png"), report.Chart)
	assert.Equal(t, "prompt", report.Frontend)

	assert.Equal(t, 1, chart.calls)
	assert.Equal(t, report.Distribution, chart.got)
	require.Len(t, recorder.reports, 1)
	assert.Equal(t, report.Records, recorder.reports[0].Records)
}

func TestAnalyzeNoURLs(t *testing.T) {
	t.Parallel()

	chart := &fakeChart{}
	analyzer := NewAnalyzer(AnalyzerDeps{
		Classifier: classifier.New(classifier.DefaultRules()),
		Chart:      chart,
		Logger:     zerolog.Nop(),
	})

	_, err := analyzer.Analyze(context.Background(), "web", []string{"", "   "})
	assert.ErrorIs(t, err, ErrNoURLs)
	assert.Zero(t, chart.calls)
}

func TestAnalyzeChartFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	recorder := &fakeRecorder{}
	analyzer := NewAnalyzer(AnalyzerDeps{
		Classifier: classifier.New(classifier.DefaultRules()),
		Chart:      &fakeChart{err: boom},
		Recorder:   recorder,
		Logger:     zerolog.Nop(),
	})

	_, err := analyzer.Analyze(context.Background(), "web", []string{"a.com"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, recorder.reports)
}

func TestAnalyzeWithoutOptionalAdapters(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(AnalyzerDeps{Classifier: classifier.New(classifier.DefaultRules())})

	report, err := analyzer.Analyze(context.Background(), "web", []string{"a.com"})
	require.NoError(t, err)
	assert.Nil(t, report.Chart)
	assert.Len(t, report.Records, 1)
}

func TestAnalyzeWithoutClassifier(t *testing.T) {
	t.Parallel()

	_, err := NewAnalyzer(AnalyzerDeps{}).Analyze(context.Background(), "web", []string{"a.com"})
	assert.Error(t, err)
}
