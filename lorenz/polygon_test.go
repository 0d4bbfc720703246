package lorenz

import (
	"testing"

	"github.com/uyouii/lorenz-curve/model"
)

func TestBelowPolygon_VertexCount(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
	}{
		{"two values", []float64{1, 2}},
		{"four values", []float64{1, 2, 3, 4}},
		{"ten values", []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve, err := BuildCurve(tt.sample)
			if err != nil {
				t.Fatalf("BuildCurve error: %v", err)
			}
			polygon := BelowPolygon(curve)
			if got, want := len(polygon), 2*len(tt.sample); got != want {
				t.Errorf("vertex count = %v, want %v", got, want)
			}
		})
	}
}

func TestBelowPolygon_Boundary(t *testing.T) {
	curve, err := BuildCurve([]float64{0, 0, 10})
	if err != nil {
		t.Fatalf("BuildCurve error: %v", err)
	}

	want := model.Polygon{
		{X: 0, Y: 0},
		{X: 1.0 / 3, Y: 0},
		{X: 2.0 / 3, Y: 0},
		{X: 1, Y: 1},
		{X: 2.0 / 3, Y: 0},
		{X: 1.0 / 3, Y: 0},
	}

	polygon := BelowPolygon(curve)
	if len(polygon) != len(want) {
		t.Fatalf("vertex count = %v, want %v", len(polygon), len(want))
	}
	for i := range want {
		if !approx(polygon[i].X, want[i].X) || !approx(polygon[i].Y, want[i].Y) {
			t.Errorf("vertex %v = %v, want %v", i, polygon[i], want[i])
		}
	}
}

// The walk goes left to right along the baseline and right to left along
// the curve, so the shoelace area must come out positive and must equal
// the trapezoidal area under the curve minus the corner triangle the
// closing shortcut from (x_{n-1}, 0) up to (1, 1) cuts off.
func TestBelowPolygon_ShoelaceArea(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
	}{
		{"uniform", []float64{2, 2, 2, 2}},
		{"increasing", []float64{1, 2, 3, 4}},
		{"skewed", []float64{1, 1, 1, 1, 1, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve, err := BuildCurve(tt.sample)
			if err != nil {
				t.Fatalf("BuildCurve error: %v", err)
			}

			var auc float64
			for i := 1; i < len(curve.Points); i++ {
				width := curve.Points[i].X - curve.Points[i-1].X
				auc += width * (curve.Points[i].Y + curve.Points[i-1].Y) / 2
			}

			n := float64(len(tt.sample))
			want := auc - 1/(2*n)

			area := BelowPolygon(curve).Area()
			if area < 0 {
				t.Errorf("area = %v, want counter-clockwise (positive)", area)
			}
			if !approx(area, want) {
				t.Errorf("area = %v, want %v", area, want)
			}
		})
	}
}

// The polygon is simple: the baseline half walks x strictly left to right
// at y=0, the curve half walks strictly right to left above or on it.
func TestBelowPolygon_Simple(t *testing.T) {
	curve, err := BuildCurve([]float64{2, 4, 4, 10, 30})
	if err != nil {
		t.Fatalf("BuildCurve error: %v", err)
	}

	polygon := BelowPolygon(curve)
	n := len(polygon) / 2

	for i := 0; i < n; i++ {
		if polygon[i].Y != 0 {
			t.Errorf("baseline vertex %v has y = %v, want 0", i, polygon[i].Y)
		}
		if i > 0 && polygon[i].X <= polygon[i-1].X {
			t.Errorf("baseline x not increasing at vertex %v", i)
		}
	}
	for i := n + 1; i < 2*n; i++ {
		if polygon[i].X >= polygon[i-1].X {
			t.Errorf("curve-walk x not decreasing at vertex %v", i)
		}
		if polygon[i].Y < 0 {
			t.Errorf("curve-walk vertex %v below the baseline", i)
		}
	}
}
