package render

import (
	"image/color"
	"io"

	"github.com/uyouii/lorenz-curve/lorenz"
	"github.com/uyouii/lorenz-curve/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Render assembles the chart for a curve: optional highlight fills, the
// curve line, one marker per support point and the dashed equality
// diagonal, plus labels and title from the config. Neither input is
// modified. The only possible failure is an invalid config.
func Render(c *model.Curve, cfg Config) (*plot.Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	layers, err := assembleLayers(c, cfg)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	for _, layer := range layers {
		p.Add(layer)
	}
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLab
	p.Y.Label.Text = cfg.YLab
	return p, nil
}

// assembleLayers builds the plotters bottom to top; later layers draw on
// top of earlier ones. The config must already be validated.
func assembleLayers(c *model.Curve, cfg Config) ([]plot.Plotter, error) {
	palette := cfg.palette()
	layers := []plot.Plotter{}

	if cfg.HighlightBelowCurve {
		fill, _ := palette.Lookup(cfg.HighlightBelowCurveFillColor)
		poly, err := plotter.NewPolygon(lorenz.BelowPolygon(c))
		if err != nil {
			return nil, err
		}
		poly.Color = withAlpha(fill, cfg.HighlightBelowCurveAlpha)
		poly.LineStyle.Width = 0
		layers = append(layers, poly)
	}

	if cfg.HighlightAboveCurve {
		// The fill region is the curve's own outline: the implicit closing
		// edge from (1,1) back to (0,0) runs along the equality diagonal,
		// so this shades the gap between curve and diagonal.
		fill, _ := palette.Lookup(cfg.HighlightAboveCurveFillColor)
		poly, err := plotter.NewPolygon(c)
		if err != nil {
			return nil, err
		}
		poly.Color = withAlpha(fill, cfg.HighlightAboveCurveAlpha)
		poly.LineStyle.Width = 0
		layers = append(layers, poly)
	}

	line, err := plotter.NewLine(c)
	if err != nil {
		return nil, err
	}
	layers = append(layers, line)

	markers, err := plotter.NewScatter(c)
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle.Radius = vg.Points(cfg.PointSize)
	layers = append(layers, markers)

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	diagonal.LineStyle.Dashes = plotutil.Dashes(1)
	diagonal.LineStyle.Color = color.Gray{Y: 0x80}
	layers = append(layers, diagonal)

	return layers, nil
}

// withAlpha keeps the color's channels and replaces its opacity.
func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha*255 + 0.5),
	}
}

// WriteChart encodes the chart into w at the given size in inches.
// Format is any encoding vg supports, like "png", "pdf", "svg" or "eps".
func WriteChart(w io.Writer, p *plot.Plot, widthInch, heightInch float64, format string) error {
	writer, err := p.WriterTo(vg.Length(widthInch)*vg.Inch, vg.Length(heightInch)*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}
