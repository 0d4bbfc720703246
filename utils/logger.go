package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

// GetLogger returns the library's named logger.
func GetLogger(ctx context.Context) *zap.Logger {
	return zap.L().Named("lorenz")
}

// GetPanicInfo captures the current goroutine stack for recover logging.
func GetPanicInfo() string {
	buf := make([]byte, 16384)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
