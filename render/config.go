package render

import (
	"fmt"

	"github.com/uyouii/lorenz-curve/common"
)

// Config holds every recognized chart option. All validation happens in
// Validate, once, before any layer is assembled.
type Config struct {
	XLab  string
	YLab  string
	Title string

	// shade the region between the curve and the x axis
	HighlightBelowCurve          bool
	HighlightBelowCurveFillColor string
	HighlightBelowCurveAlpha     float64

	// shade the region enclosed by the curve's own outline
	HighlightAboveCurve          bool
	HighlightAboveCurveFillColor string
	HighlightAboveCurveAlpha     float64

	// PointSize is the marker radius in printer's points, at least 1.
	PointSize float64

	// Palette is the set of legal fill color names. Nil means DefaultPalette.
	Palette Palette
}

// DefaultConfig returns the documented defaults: both highlights off,
// pastel fills at half opacity when they are switched on.
func DefaultConfig() Config {
	return Config{
		XLab:  "cumulative share of population",
		YLab:  "cumulative share of quantity",
		Title: "Lorenz curve",

		HighlightBelowCurve:          false,
		HighlightBelowCurveFillColor: "lightgreen",
		HighlightBelowCurveAlpha:     0.5,

		HighlightAboveCurve:          false,
		HighlightAboveCurveFillColor: "lightcoral",
		HighlightAboveCurveAlpha:     0.5,

		PointSize: 2,
	}
}

func (cfg *Config) palette() Palette {
	if cfg.Palette != nil {
		return cfg.Palette
	}
	return defaultPalette
}

var defaultPalette = DefaultPalette()

// Validate checks every field eagerly, the color fields against the
// configured palette. All failures wrap common.ErrorInvalidConfig.
func (cfg *Config) Validate() error {
	if cfg.XLab == "" || cfg.YLab == "" || cfg.Title == "" {
		return fmt.Errorf("%w: xlab, ylab and title must be non-empty", common.ErrorInvalidConfig)
	}
	if cfg.HighlightBelowCurveAlpha < 0 || cfg.HighlightBelowCurveAlpha > 1 {
		return fmt.Errorf("%w: below-curve alpha %v outside [0, 1]",
			common.ErrorInvalidConfig, cfg.HighlightBelowCurveAlpha)
	}
	if cfg.HighlightAboveCurveAlpha < 0 || cfg.HighlightAboveCurveAlpha > 1 {
		return fmt.Errorf("%w: above-curve alpha %v outside [0, 1]",
			common.ErrorInvalidConfig, cfg.HighlightAboveCurveAlpha)
	}
	if cfg.PointSize < 1 {
		return fmt.Errorf("%w: point size %v below 1", common.ErrorInvalidConfig, cfg.PointSize)
	}

	palette := cfg.palette()
	if _, ok := palette.Lookup(cfg.HighlightBelowCurveFillColor); !ok {
		return fmt.Errorf("%w: unknown below-curve fill color %q",
			common.ErrorInvalidConfig, cfg.HighlightBelowCurveFillColor)
	}
	if _, ok := palette.Lookup(cfg.HighlightAboveCurveFillColor); !ok {
		return fmt.Errorf("%w: unknown above-curve fill color %q",
			common.ErrorInvalidConfig, cfg.HighlightAboveCurveFillColor)
	}
	return nil
}
