package model

import (
	"math"
	"testing"
)

func TestCurve_XYer(t *testing.T) {
	curve := &Curve{
		Sample: []float64{1, 1},
		Points: []CurvePoint{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 1, Y: 1}},
	}

	if curve.Len() != 3 {
		t.Fatalf("Len = %v, want 3", curve.Len())
	}
	if curve.SampleSize() != 2 {
		t.Errorf("SampleSize = %v, want 2", curve.SampleSize())
	}
	x, y := curve.XY(1)
	if x != 0.5 || y != 0.5 {
		t.Errorf("XY(1) = (%v, %v), want (0.5, 0.5)", x, y)
	}
}

func TestCurve_IsEmpty(t *testing.T) {
	var nilCurve *Curve
	if !nilCurve.IsEmpty() {
		t.Errorf("nil curve should be empty")
	}
	if !(&Curve{}).IsEmpty() {
		t.Errorf("zero curve should be empty")
	}
	if (&Curve{Points: []CurvePoint{{}}}).IsEmpty() {
		t.Errorf("curve with points should not be empty")
	}
}

func TestPolygon_Area(t *testing.T) {
	tests := []struct {
		name    string
		polygon Polygon
		want    float64
	}{
		{
			"unit square ccw",
			Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			1,
		},
		{
			"unit square cw",
			Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
			-1,
		},
		{
			"right triangle",
			Polygon{{0, 0}, {1, 0}, {1, 1}},
			0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.polygon.Area(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Area = %v, want %v", got, tt.want)
			}
		})
	}
}
