package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/starford/moodsense/internal/models"
)

// Chart file names inside the chart directory.
const (
	FrequencyFile = "mood_frequency.png"
	TrendFile     = "sentiment_trend.png"
)

// ErrViewer marks a chart that was saved but could not be opened.
var ErrViewer = errors.New("chart viewer failed")

var (
	barColor  = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	lineColor = color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff}
)

// PlotRenderer renders charts to PNG files with gonum/plot.
type PlotRenderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	open   func(path string) error
}

// PlotOption configures a PlotRenderer.
type PlotOption func(*PlotRenderer)

// WithSize sets the image size in centimetres.
func WithSize(widthCM, heightCM float64) PlotOption {
	return func(r *PlotRenderer) {
		r.width = vg.Length(widthCM) * vg.Centimeter
		r.height = vg.Length(heightCM) * vg.Centimeter
	}
}

// WithViewer opens every rendered chart with open.
func WithViewer(open func(path string) error) PlotOption {
	return func(r *PlotRenderer) { r.open = open }
}

// NewPlotRenderer writes charts into dir, creating it on demand.
func NewPlotRenderer(dir string, opts ...PlotOption) *PlotRenderer {
	r := &PlotRenderer{
		dir:    dir,
		width:  16 * vg.Centimeter,
		height: 10 * vg.Centimeter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FrequencyChart draws one bar per mood.
func (r *PlotRenderer) FrequencyChart(counts []MoodCount) (string, error) {
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Mood.String()
	}

	p := plot.New()
	p.Title.Text = "Mood Frequency"
	p.X.Label.Text = "Mood"
	p.Y.Label.Text = "Count"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("report: bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	return r.save(p, FrequencyFile)
}

// TrendChart draws polarity against the entry date.
func (r *PlotRenderer) TrendChart(series Series) (string, error) {
	xys := make(plotter.XYs, series.Len())
	for i := range xys {
		xys[i].X = float64(series.Dates[i].Unix())
		xys[i].Y = series.Polarities[i]
	}

	p := plot.New()
	p.Title.Text = "Sentiment Trend Over Time"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Polarity"
	p.X.Tick.Marker = plot.TimeTicks{Format: models.DateLayout}
	p.Y.Min = -1
	p.Y.Max = 1

	line, err := plotter.NewLine(xys)
	if err != nil {
		return "", fmt.Errorf("report: line chart: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)
	p.Add(plotter.NewGrid(), line)

	return r.save(p, TrendFile)
}

func (r *PlotRenderer) save(p *plot.Plot, name string) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("report: mkdir: %w", err)
	}
	path := filepath.Join(r.dir, name)
	if err := p.Save(r.width, r.height, path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", name, err)
	}
	if r.open != nil {
		if err := r.open(path); err != nil {
			return path, fmt.Errorf("report: open %s: %w: %w", name, ErrViewer, err)
		}
	}
	return path, nil
}

// OpenWithSystemViewer hands path to the platform's default file opener
// without waiting for it to exit.
func OpenWithSystemViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

var _ Renderer = (*PlotRenderer)(nil)
