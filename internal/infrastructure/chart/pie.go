package chart

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"URLAnalyzer/internal/config"
	"URLAnalyzer/internal/domain"
	"URLAnalyzer/internal/ports"
)

// ErrEmptyDistribution is returned when there is nothing to draw.
var ErrEmptyDistribution = errors.New("distribution has no records")

// PieRenderer draws the classification distribution as a PNG pie chart.
type PieRenderer struct {
	width  int
	height int
	title  string
	colors []drawing.Color
}

var _ ports.ChartRenderer = (*PieRenderer)(nil)

// NewPieRenderer builds a renderer from chart settings.
func NewPieRenderer(cfg config.ChartConfig) *PieRenderer {
	colors := make([]drawing.Color, 0, len(cfg.Colors))
	for _, hex := range cfg.Colors {
		colors = append(colors, drawing.ColorFromHex(strings.TrimPrefix(hex, "#")))
	}
	return &PieRenderer{
		width:  cfg.Width,
		height: cfg.Height,
		title:  cfg.Title,
		colors: colors,
	}
}

// RenderPie returns PNG bytes. Slices keep the distribution order and take
// colors from the palette in that order.
func (p *PieRenderer) RenderPie(ctx context.Context, dist domain.Distribution) ([]byte, error) {
	if dist.Total == 0 || len(dist.Slices) == 0 {
		return nil, ErrEmptyDistribution
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]gochart.Value, 0, len(dist.Slices))
	for i, s := range dist.Slices {
		value := gochart.Value{
			Value: float64(s.Count),
			Label: SliceLabel(s),
		}
		if len(p.colors) > 0 {
			value.Style = gochart.Style{FillColor: p.colors[i%len(p.colors)]}
		}
		values = append(values, value)
	}

	pie := gochart.PieChart{
		Title:  p.title,
		Width:  p.width,
		Height: p.height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// SliceLabel formats a slice as "<classification> (<percent>%)".
func SliceLabel(s domain.Slice) string {
	return fmt.Sprintf("%s (%.1f%%)", s.Classification, s.Percent)
}

// DataURI encodes a PNG for inline use in an <img> tag.
func DataURI(png []byte) string {
	if len(png) == 0 {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
