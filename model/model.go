package model

import "fmt"

// CurvePoint is one support point of a Lorenz curve.
// X is the cumulative fraction of the population, Y the cumulative
// fraction of the summed quantity, both in [0, 1].
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve holds the sorted sample and its n+1 support points, origin included.
// Built once by lorenz.BuildCurve and not modified afterwards.
type Curve struct {
	Sample []float64
	Points []CurvePoint
}

// Len returns the number of support points.
func (c *Curve) Len() int {
	return len(c.Points)
}

// XY returns the support point at index i.
// Together with Len this satisfies gonum.org/v1/plot/plotter.XYer.
func (c *Curve) XY(i int) (float64, float64) {
	return c.Points[i].X, c.Points[i].Y
}

// SampleSize returns n, the number of observations behind the curve.
func (c *Curve) SampleSize() int {
	return len(c.Sample)
}

func (c *Curve) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Points) == 0
}

func (c *Curve) DebugString() string {
	if c == nil {
		return "curve: nil"
	}
	return fmt.Sprintf("curve: sampleSize: %v, pointCount: %v", len(c.Sample), len(c.Points))
}

// Polygon is a closed region traced by its vertices in order; the edge from
// the last vertex back to the first is implicit.
type Polygon []CurvePoint

func (p Polygon) Len() int {
	return len(p)
}

// XY returns the vertex at index i, satisfying plotter.XYer like Curve.
func (p Polygon) XY(i int) (float64, float64) {
	return p[i].X, p[i].Y
}

// Area returns the signed shoelace area of the polygon, positive for
// counter-clockwise vertex order.
func (p Polygon) Area() float64 {
	var area float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

// Summary carries the report-level numbers derived from a curve.
type Summary struct {
	SampleSize int     `json:"sample_size,omitempty"`
	Total      float64 `json:"total,omitempty"`
	Gini       float64 `json:"gini,omitempty"`
}
