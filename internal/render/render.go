// Package render draws GC content profiles as line charts
package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/gcplot/config"
	"github.com/jjtimmons/gcplot/internal/gc"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// formats are the image file extensions that gonum/plot can write
var formats = map[string]bool{
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"png":  true,
	"svg":  true,
	"tex":  true,
	"tif":  true,
	"tiff": true,
}

// Meta describes the profile being drawn.
type Meta struct {
	// ID of the sequence
	ID string

	// Length of the sequence in bp
	Length int

	// Window length used to make the profile
	Window int

	// Step length used to make the profile
	Step int
}

// Save draws the samples and writes the image to path. The image format is
// taken from path's extension.
func Save(samples []gc.Sample, meta Meta, conf config.PlotConfig, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !formats[format] {
		return fmt.Errorf("unsupported image format %q for %s", format, path)
	}

	if conf.Width <= 0 || conf.Height <= 0 {
		return fmt.Errorf("invalid plot size %vx%v", conf.Width, conf.Height)
	}

	p, err := New(samples, meta, conf)
	if err != nil {
		return err
	}

	if err = p.Save(vg.Length(conf.Width)*vg.Inch, vg.Length(conf.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %v", path, err)
	}

	return nil
}

// New makes a plot of the samples, with positions along the x axis and
// GC content on the y axis.
func New(samples []gc.Sample, meta Meta, conf config.PlotConfig) (*plot.Plot, error) {
	lineColor, err := parseColor(conf.Color)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title(conf.Title, meta)
	p.X.Label.Text = conf.XLabel
	p.Y.Label.Text = conf.YLabel

	p.X.Min = 0
	p.X.Max = float64(meta.Length)
	p.Y.Min = 0
	p.Y.Max = 100

	if conf.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(grid)
	}

	if len(samples) == 0 {
		return p, nil
	}

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = float64(s.Position)
		pts[i].Y = s.GC
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to make line: %v", err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(conf.LineWidth)
	p.Add(line)

	return p, nil
}

// title fills in the window and step lengths if the title is a format string
func title(format string, meta Meta) string {
	if !strings.Contains(format, "%") {
		return format
	}
	return fmt.Sprintf(format, meta.Window, meta.Step)
}

// parseColor returns the color for an SVG 1.1 color name, eg "steelblue"
func parseColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
