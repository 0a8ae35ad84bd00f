package distributions

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultPlotPath is where the comparison figure is written by default.
const DefaultPlotPath = "probability_distributions.png"

const (
	figureWidth  = 15 * vg.Inch
	figureHeight = 10 * vg.Inch
	figureDPI    = 100

	gridRows = 2
	gridCols = 3

	curvePoints = 100
)

var (
	histogramFill = color.NRGBA{R: 31, G: 119, B: 180, A: 128}
	curveColor    = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
)

// Plot renders the comparison figure as a PNG at path, replacing any
// existing file.
func Plot(samples Samples, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to write %s: %w", path, cerr)
		}
	}()

	return Render(f, samples)
}

// Render draws one panel per distribution on a 2x3 grid and encodes the
// figure as PNG into w. Each panel overlays a density-normalized histogram
// with the theoretical curve fitted to the sample.
func Render(w io.Writer, samples Samples) error {
	img := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(figureDPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      gridRows,
		Cols:      gridCols,
		PadX:      8 * vg.Millimeter,
		PadY:      8 * vg.Millimeter,
		PadTop:    4 * vg.Millimeter,
		PadBottom: 4 * vg.Millimeter,
		PadLeft:   4 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}

	for i, name := range Names() {
		data, ok := samples[name]
		if !ok {
			continue
		}
		p, err := comparisonPlot(name, data)
		if err != nil {
			return err
		}
		p.Draw(tiles.At(dc, i%gridCols, i/gridCols))
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode figure: %w", err)
	}
	return nil
}

func comparisonPlot(name Name, data []float64) (*plot.Plot, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptySample)
	}

	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	if hi <= lo {
		return nil, fmt.Errorf("%s: %w: all observations equal", name, ErrDegenerateSample)
	}

	pdf, err := overlayDensity(name, data)
	if err != nil {
		return nil, err
	}

	hist, err := plotter.NewHist(plotter.Values(data), binCount(data))
	if err != nil {
		return nil, fmt.Errorf("%s: histogram: %w", name, err)
	}
	hist.Normalize(1)
	hist.FillColor = histogramFill

	xs := make([]float64, curvePoints)
	floats.Span(xs, lo, hi)
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i].X = x
		pts[i].Y = pdf(x)
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: theoretical curve: %w", name, err)
	}
	curve.Color = curveColor
	curve.Width = vg.Points(1.5)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Distribution", name)
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Density"
	p.Add(hist, curve)
	p.Legend.Add("Histogram", hist)
	p.Legend.Add("Theoretical PDF", curve)
	p.Legend.Top = true

	return p, nil
}

// binCount picks the larger of the Sturges and Freedman-Diaconis bin counts.
func binCount(data []float64) int {
	n := float64(len(data))
	sturges := int(math.Ceil(math.Log2(n))) + 1

	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	iqr, err := stats.InterQuartileRange(data)
	if err != nil || iqr <= 0 || hi <= lo {
		return sturges
	}

	width := 2 * iqr / math.Cbrt(n)
	return max(sturges, int(math.Ceil((hi-lo)/width)))
}
