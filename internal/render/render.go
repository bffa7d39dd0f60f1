// Package render draws concordance diagrams: a Venn diagram for 2-3
// variant sets or a combination-frequency (UpSet-style) plot for 4 or
// more, via gonum/plot.
package render

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/inodb/vcf-concordance/internal/overlap"
)

// Title shown on every concordance figure.
const Title = "Variant Concordance Between VCF Files"

// DefaultFilename is used when the output path names a directory.
const DefaultFilename = "vcf_concordance.png"

// DefaultDPI is the raster resolution of written images.
const DefaultDPI = 300

// Mode selects what happens to the finished figure.
type Mode int

const (
	// ModeWriteFile writes the figure as a PNG to Options.Path.
	ModeWriteFile Mode = iota
	// ModeShow writes the figure to a temporary file and opens it
	// with the platform image viewer.
	ModeShow
)

// Options configures one rendering call. Zero Width/Height selects a
// per-diagram default figure size.
type Options struct {
	Mode   Mode
	Path   string // output path, ModeWriteFile only
	DPI    int
	Width  vg.Length
	Height vg.Length
}

// Render draws the diagram and writes or shows it according to the
// options. The figure is not retained after the call.
func Render(d overlap.Diagram, opts Options) error {
	var (
		p   *plot.Plot
		err error
		w   vg.Length
		h   vg.Length
	)

	switch d := d.(type) {
	case *overlap.Pairwise:
		p, err = vennPlot(d)
		w, h = 10*vg.Inch, 8*vg.Inch
	case *overlap.MultiSet:
		p, err = upsetPlot(d)
		w, h = 12*vg.Inch, 8*vg.Inch
	default:
		return fmt.Errorf("unsupported diagram type %T", d)
	}
	if err != nil {
		return err
	}

	if opts.Width > 0 {
		w = opts.Width
	}
	if opts.Height > 0 {
		h = opts.Height
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	switch opts.Mode {
	case ModeWriteFile:
		return writePNG(p, opts.Path, w, h, dpi)
	case ModeShow:
		return show(p, w, h, dpi)
	default:
		return fmt.Errorf("unsupported render mode %d", opts.Mode)
	}
}

// writePNG rasterizes the plot at the given DPI and writes it to path.
func writePNG(p *plot.Plot, path string, w, h vg.Length, dpi int) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write png: %w", err)
	}

	return f.Close()
}

// show writes the figure to a temporary PNG and hands it to the
// platform image viewer.
func show(p *plot.Plot, w, h vg.Length, dpi int) error {
	f, err := os.CreateTemp("", "vcf-concordance-*.png")
	if err != nil {
		return fmt.Errorf("create temp image: %w", err)
	}
	path := f.Name()
	f.Close()

	if err := writePNG(p, path, w, h, dpi); err != nil {
		return err
	}
	fmt.Printf("Diagram written to %s\n", path)

	viewer := "xdg-open"
	if runtime.GOOS == "darwin" {
		viewer = "open"
	}

	// Best effort; the path was already printed for environments
	// without a viewer.
	_ = exec.Command(viewer, path).Start()

	return nil
}
