package lorenz

import "github.com/uyouii/lorenz-curve/model"

// BelowPolygon traces the closed region between the curve and the x axis.
//
// The walk runs left to right along the baseline, up to the curve's end
// point, then right to left back along the curve. The origin is left out:
// the implicit closing edge from the last vertex to the first one is the
// (0,0)..(x_1,y_1) segment of the curve itself. For a curve over n
// observations the result has exactly 2n vertices, ordered
// counter-clockwise, and is simple because the curve is monotonic.
func BelowPolygon(c *model.Curve) model.Polygon {
	points := c.Points
	n := len(points) - 1

	vertices := make(model.Polygon, 0, 2*n)
	for i := 0; i < n; i++ {
		vertices = append(vertices, model.CurvePoint{X: points[i].X, Y: 0})
	}
	for i := n; i >= 1; i-- {
		vertices = append(vertices, points[i])
	}
	return vertices
}
