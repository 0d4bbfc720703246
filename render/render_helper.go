package render

import (
	"context"

	"github.com/uyouii/lorenz-curve/lorenz"
	"github.com/uyouii/lorenz-curve/model"
	"github.com/uyouii/lorenz-curve/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
)

// CalculateLorenzChart builds the curve for a sample and renders it in
// one step, logging what it produced.
func CalculateLorenzChart(ctx context.Context, sample []float64, cfg Config) (*plot.Plot, *model.Summary, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("CalculateLorenzChart recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("sample", sample))
		}
	}()

	curve, err := lorenz.BuildCurve(sample)
	if err != nil {
		logger.Error("BuildCurve failed", zap.Error(err), zap.Int("sampleSize", len(sample)))
		return nil, nil, err
	}

	chart, err := Render(curve, cfg)
	if err != nil {
		logger.Error("Render failed", zap.Error(err))
		return nil, nil, err
	}

	summary := lorenz.Summarize(curve)
	logger.Info("lorenz chart calculated", zap.Any("summary", summary),
		zap.String("curve", curve.DebugString()))

	return chart, &summary, nil
}
