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

// circle is a translucent filled circle in data coordinates.
type circle struct {
	x, y, r float64
	fill    color.Color
	stroke  color.Color
}

// circleSegments approximates each circle outline; the x and y scales
// of the canvas can differ, so the path is built point by point rather
// than with a single arc.
const circleSegments = 128

// Plot implements plot.Plotter.
func (c *circle) Plot(cv draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&cv)

	var path vg.Path
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		pt := vg.Point{
			X: trX(c.x + c.r*math.Cos(a)),
			Y: trY(c.y + c.r*math.Sin(a)),
		}
		if i == 0 {
			path.Move(pt)
		} else {
			path.Line(pt)
		}
	}
	path.Close()

	cv.SetColor(c.fill)
	cv.Fill(path)

	cv.SetLineWidth(vg.Points(1))
	cv.SetColor(c.stroke)
	cv.Stroke(path)
}

// anchor is a fixed label position for one diagram region.
type anchor struct {
	mask overlap.Mask
	x, y float64
}

// vennLayout is the fixed geometry for a 2- or 3-circle diagram:
// circle centers, exclusive-region label anchors and set-label
// positions, all in data coordinates.
type vennLayout struct {
	centers    []struct{ x, y float64 }
	radius     float64
	regions    []anchor
	setLabels  []struct{ x, y float64 }
	xMin, xMax float64
	yMin, yMax float64
}

var venn2Layout = vennLayout{
	centers: []struct{ x, y float64 }{{-0.45, 0}, {0.45, 0}},
	radius:  1.0,
	regions: []anchor{
		{mask: 0b01, x: -0.95, y: 0},
		{mask: 0b10, x: 0.95, y: 0},
		{mask: 0b11, x: 0, y: 0},
	},
	setLabels: []struct{ x, y float64 }{{-0.45, 1.15}, {0.45, 1.15}},
	xMin:      -1.8, xMax: 1.8,
	yMin: -1.4, yMax: 1.6,
}

var venn3Layout = vennLayout{
	centers: []struct{ x, y float64 }{{-0.45, 0.45}, {0.45, 0.45}, {0, -0.45}},
	radius:  1.0,
	regions: []anchor{
		{mask: 0b001, x: -0.85, y: 0.75},
		{mask: 0b010, x: 0.85, y: 0.75},
		{mask: 0b100, x: 0, y: -1.0},
		{mask: 0b011, x: 0, y: 0.8},
		{mask: 0b101, x: -0.55, y: -0.2},
		{mask: 0b110, x: 0.55, y: -0.2},
		{mask: 0b111, x: 0, y: 0.15},
	},
	setLabels: []struct{ x, y float64 }{{-1.15, 1.35}, {1.15, 1.35}, {0, -1.7}},
	xMin:      -2.0, xMax: 2.0,
	yMin: -2.0, yMax: 1.9,
}

// Fill colors follow the red/green/blue convention of Venn plots,
// translucent so intersections darken.
var vennFills = []color.Color{
	color.NRGBA{R: 214, G: 39, B: 40, A: 100},
	color.NRGBA{R: 44, G: 160, B: 44, A: 100},
	color.NRGBA{R: 31, G: 119, B: 180, A: 100},
}

// vennPlot builds the 2- or 3-circle concordance diagram.
func vennPlot(d *overlap.Pairwise) (*plot.Plot, error) {
	sets := d.Sets()
	layout := venn2Layout
	if len(sets) == 3 {
		layout = venn3Layout
	}

	p := plot.New()
	p.Title.Text = Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.HideAxes()

	for i := range sets {
		p.Add(&circle{
			x:      layout.centers[i].x,
			y:      layout.centers[i].y,
			r:      layout.radius,
			fill:   vennFills[i],
			stroke: color.Black,
		})
	}

	// Region counts.
	var pts plotter.XYs
	var texts []string
	for _, a := range layout.regions {
		pts = append(pts, plotter.XY{X: a.x, Y: a.y})
		texts = append(texts, fmt.Sprintf("%d", d.RegionCount(a.mask)))
	}
	// Set labels.
	for i, s := range sets {
		pts = append(pts, plotter.XY{X: layout.setLabels[i].x, Y: layout.setLabels[i].y})
		texts = append(texts, s.Label)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("create venn labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(13)
	}
	p.Add(labels)

	p.X.Min, p.X.Max = layout.xMin, layout.xMax
	p.Y.Min, p.Y.Max = layout.yMin, layout.yMax

	return p, nil
}
