package lorenz

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/lorenz-curve/common"
	"github.com/uyouii/lorenz-curve/model"
	"gonum.org/v1/gonum/floats"
)

// BuildCurve computes the Lorenz curve of a sample.
//
// The sample needs at least two observations, all of them finite and
// non-negative. The input slice is copied before sorting, so the caller's
// data is never touched. The returned curve has len(sample)+1 support
// points: the origin plus one point per observation, with
// x_i = i/n and y_i = prefixSum_i / total.
func BuildCurve(sample []float64) (*model.Curve, error) {
	if len(sample) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 values, got %v", common.ErrorInvalidInput, len(sample))
	}
	for i, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value at index %v is not finite", common.ErrorInvalidInput, i)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %v at index %v", common.ErrorInvalidInput, v, i)
		}
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	prefixSums := make([]float64, len(sorted))
	floats.CumSum(prefixSums, sorted)

	total := prefixSums[len(prefixSums)-1]
	if total == 0 {
		return nil, fmt.Errorf("%w: all values are zero", common.ErrorDivisionByZero)
	}

	n := len(sorted)
	points := make([]model.CurvePoint, 0, n+1)
	points = append(points, model.CurvePoint{X: 0, Y: 0})
	for i := 0; i < n; i++ {
		points = append(points, model.CurvePoint{
			X: float64(i+1) / float64(n),
			Y: prefixSums[i] / total,
		})
	}

	return &model.Curve{
		Sample: sorted,
		Points: points,
	}, nil
}
