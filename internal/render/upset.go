package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/inodb/vcf-concordance/internal/overlap"
)

// upsetPlot builds the combination-frequency plot for four or more
// sets: one bar per non-empty membership combination, sorted by
// descending cardinality, counts annotated above the bars.
func upsetPlot(d *overlap.MultiSet) (*plot.Plot, error) {
	combos := d.Combinations()

	p := plot.New()
	p.Title.Text = Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.Text = "Variants"

	values := make(plotter.Values, len(combos))
	names := make([]string, len(combos))
	for i, c := range combos {
		values[i] = float64(c.Count)
		names[i] = c.Label()
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("create bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(bars)
	p.NominalX(names...)

	// Combination labels get long; slant them like matplotlib does.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	// Count annotations above each bar.
	var pts plotter.XYs
	var texts []string
	for i, c := range combos {
		pts = append(pts, plotter.XY{X: float64(i), Y: float64(c.Count)})
		texts = append(texts, fmt.Sprintf("%d", c.Count))
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("create count labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(11)
	}
	p.Add(labels)

	p.Y.Min = 0

	return p, nil
}
