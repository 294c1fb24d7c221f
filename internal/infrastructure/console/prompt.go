package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"URLAnalyzer/internal/infrastructure/input"
	"URLAnalyzer/internal/infrastructure/table"
	"URLAnalyzer/internal/ports"
	"URLAnalyzer/internal/usecase"
)

// Frontend labels reports produced by the prompt.
const Frontend = "prompt"

const (
	welcomeLine = "Welcome to URL Length Analyzer"
	promptLine  = "Enter multiple URLs separated by commas: "
)

// PromptDeps wires the prompt to the analyzer and its terminal.
type PromptDeps struct {
	Analyzer  ports.BatchAnalyzer
	Collector *input.Collector
	In        io.Reader
	Out       io.Writer
	ChartPath string
	Logger    zerolog.Logger
}

// Prompt is the interactive command-line front-end.
type Prompt struct {
	analyzer  ports.BatchAnalyzer
	collector *input.Collector
	in        io.Reader
	out       io.Writer
	chartPath string
	logger    zerolog.Logger
}

// NewPrompt builds the prompt; In and Out default to stdin and stdout.
func NewPrompt(deps PromptDeps) *Prompt {
	in, out := deps.In, deps.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompt{
		analyzer:  deps.Analyzer,
		collector: deps.Collector,
		in:        in,
		out:       out,
		chartPath: deps.ChartPath,
		logger:    deps.Logger,
	}
}

// Run greets the user, reads one comma-separated line and prints the results.
func (p *Prompt) Run(ctx context.Context) error {
	fmt.Fprintln(p.out, welcomeLine)
	fmt.Fprint(p.out, promptLine)

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}

	return p.analyze(ctx, input.SplitList(strings.TrimSpace(line)))
}

// RunFile analyzes the URLs of a file instead of asking for them.
// The source is picked from the file extension.
func (p *Prompt) RunFile(ctx context.Context, path string) error {
	if p.collector == nil {
		return fmt.Errorf("input collector is not configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	raws, err := p.collector.Collect(ctx, input.Input{Filename: path, Reader: f})
	if err != nil {
		return fmt.Errorf("collect %s: %w", path, err)
	}

	fmt.Fprintln(p.out, welcomeLine)
	return p.analyze(ctx, raws)
}

func (p *Prompt) analyze(ctx context.Context, raws []string) error {
	if p.analyzer == nil {
		return fmt.Errorf("analyzer is not configured")
	}

	report, err := p.analyzer.Analyze(ctx, Frontend, raws)
	if errors.Is(err, usecase.ErrNoURLs) {
		fmt.Fprintln(p.out, "\nNo URLs provided.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, "\nAnalysis Results:")
	fmt.Fprintln(p.out, table.Render(report.Records))
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, table.Summary(report.Distribution))

	if p.chartPath == "" || len(report.Chart) == 0 {
		return nil
	}

	if err := os.WriteFile(p.chartPath, report.Chart, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	p.logger.Debug().Str("path", p.chartPath).Int("bytes", len(report.Chart)).Msg("pie chart written")
	fmt.Fprintf(p.out, "\nPie chart saved to %s\n", p.chartPath)

	return nil
}
