package lorenz

import (
	"github.com/uyouii/lorenz-curve/model"
	"github.com/uyouii/lorenz-curve/utils"
	"gonum.org/v1/gonum/floats"
)

// Gini returns the Gini coefficient of the curve, 0 for perfect equality
// and approaching 1 as the whole quantity concentrates in one observation.
// Computed as 1 - 2 * AUC, with the area under the curve taken as the sum
// of the trapezoids between consecutive support points.
func Gini(c *model.Curve) float64 {
	points := c.Points

	var auc float64
	for i := 1; i < len(points); i++ {
		width := points[i].X - points[i-1].X
		auc += width * (points[i].Y + points[i-1].Y) / 2
	}
	return 1 - 2*auc
}

// Summarize collects the report-level numbers for a curve.
func Summarize(c *model.Curve) model.Summary {
	return model.Summary{
		SampleSize: c.SampleSize(),
		Total:      floats.Sum(c.Sample),
		Gini:       utils.RoundTo(Gini(c), 6),
	}
}
