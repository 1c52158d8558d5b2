package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ironsheep/shape-metrics-mcp/internal/descriptor"
	"github.com/ironsheep/shape-metrics-mcp/internal/imaging"
)

var annotationBlue = color.RGBA{B: 255, A: 255}

// MethodChart renders one method's scores for a kind as a scatter
// chart: black dots indexed by sample number, each annotated with its
// value to three decimals. Failed scores are left out. The output
// format follows the file extension.
func MethodChart(kind string, method descriptor.Method, scores []Score, path string) error {
	pts, annotations := methodPoints(scores, method.Code())

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s for kind: %s", method.Name(), kind)
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "score"
	applyScoreAxis(p)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.Black
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	offset := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		offset[i] = plotter.XY{X: pt.X, Y: pt.Y + 0.03}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: offset, Labels: annotations})
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = annotationBlue
	}
	p.Add(labels)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// CombinedChart renders every method's scores for a kind on one chart,
// one color per method with a legend of method codes.
func CombinedChart(kind string, methods []descriptor.Method, scores []Score, path string) error {
	if len(methods) == 0 {
		methods = descriptor.Methods()
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("All methods for kind: %s", kind)
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "score"
	applyScoreAxis(p)

	palette := imaging.OverlayPalette(len(methods))
	for i, method := range methods {
		pts, _ := methodPoints(scores, method.Code())
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("failed to build scatter for %s: %w", method.Code(), err)
		}
		scatter.GlyphStyle.Color = palette[i]
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(method.Code(), scatter)
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// WriteCharts renders one chart per method plus a combined chart into
// a directory, creating it if needed. File names are
// "<kind>_<code>.png" and "<kind>_combined.png". Returns the paths
// written, in order.
func WriteCharts(dir, kind string, methods []descriptor.Method, scores []Score) ([]string, error) {
	if len(methods) == 0 {
		methods = descriptor.Methods()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, method := range methods {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", kind, method.Code()))
		if err := MethodChart(kind, method, scores, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if len(methods) > 1 {
		path := filepath.Join(dir, fmt.Sprintf("%s_combined.png", kind))
		if err := CombinedChart(kind, methods, scores, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// methodPoints extracts the usable scores of one method as plot
// points with three-decimal annotation strings, indexed by sample
// number.
func methodPoints(scores []Score, code string) (plotter.XYs, []string) {
	pts := make(plotter.XYs, 0, len(scores))
	annotations := make([]string, 0, len(scores))
	for _, s := range scores {
		if s.Method != code || s.Err != "" {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(s.Index), Y: s.Value})
		annotations = append(annotations, strconv.FormatFloat(s.Value, 'f', 3, 64))
	}
	return pts, annotations
}

// applyScoreAxis fixes the y axis to the score range with a tick every
// 0.1, leaving margin so edge values stay visible.
func applyScoreAxis(p *plot.Plot) {
	p.Y.Min = -0.1
	p.Y.Max = 1.1
	ticks := make([]plot.Tick, 0, 11)
	for i := 0; i <= 10; i++ {
		v := float64(i) / 10
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 1, 64)})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
}
