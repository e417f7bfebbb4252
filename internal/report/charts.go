package report

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"edacli/internal/errors"
)

// Fixed chart filenames; re-running the pipeline overwrites them in place.
const (
	FileAdmissionsByDepartment = "admissions_by_department.png"
	FileAvgCostByDepartment    = "avg_cost_by_department.png"
	FileReadmissionYesByDept   = "readmission_yes_by_department.png"
	FileLengthOfStayVsCost     = "length_of_stay_vs_cost.png"
	FileMonthlyAdmissions      = "monthly_admissions.png"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

var (
	barColor    = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	lineColor   = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	markerColor = color.RGBA{R: 139, G: 0, B: 0, A: 255}
)

// ChartSink renders charts to PNG files inside a fixed figures directory,
// creating it on first use. Each chart is built, written and released within
// a single call; no drawing state survives between analyzers.
type ChartSink struct {
	dir     string
	dpi     int
	console *Console
	logger  *slog.Logger
}

// NewChartSink creates a chart sink writing into dir at the given DPI.
// The resolved path of every saved chart is echoed to the console.
func NewChartSink(dir string, dpi int, console *Console, logger *slog.Logger) *ChartSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartSink{dir: dir, dpi: dpi, console: console, logger: logger}
}

// SaveBar renders a bar chart of values keyed by category labels.
// The x-axis label is stripped; categories appear as nominal ticks.
func (s *ChartSink) SaveBar(title, yLabel string, categories []string, values []float64, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return errors.NewStorageError("failed to build bar chart", err).WithContext("chart", filename)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(categories...)
	p.X.Label.Text = ""

	return s.write(p, filename)
}

// SaveLine renders a line chart with point markers over nominal x labels
func (s *ChartSink) SaveLine(title, yLabel string, labels []string, values []float64, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return errors.NewStorageError("failed to build line chart", err).WithContext("chart", filename)
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = lineColor
	points.Radius = vg.Points(3)

	p.Add(line, points)
	p.Add(plotter.NewGrid())
	p.NominalX(labels...)
	p.X.Label.Text = ""

	return s.write(p, filename)
}

// SaveScatter renders a scatter plot of ys against xs
func (s *ChartSink) SaveScatter(title, xLabel, yLabel string, xs, ys []float64, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.NewStorageError("failed to build scatter plot", err).WithContext("chart", filename)
	}
	scatter.GlyphStyle.Color = markerColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(scatter)
	p.Add(plotter.NewGrid())

	return s.write(p, filename)
}

// write renders the plot to a PNG at the sink's DPI and echoes the resolved
// path. The file handle is released on every path.
func (s *ChartSink) write(p *plot.Plot, filename string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.NewStorageError("failed to create figures directory", err)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(s.dpi),
	)
	p.Draw(draw.New(canvas))

	out := filepath.Join(s.dir, filename)
	file, err := os.Create(out)
	if err != nil {
		return errors.NewStorageError("failed to create chart file", err).WithContext("chart", filename)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(file); err != nil {
		return errors.NewStorageError("failed to write chart image", err).WithContext("chart", filename)
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	s.console.Printf("[saved] %s\n", abs)
	s.logger.Debug("chart written", "path", abs, "dpi", s.dpi)

	return nil
}
