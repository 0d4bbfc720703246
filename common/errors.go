package common

import "errors"

var (
	// ErrorInvalidInput: sample too short, negative value, NaN or Inf entry.
	ErrorInvalidInput = errors.New("invalid input sample")

	// ErrorDivisionByZero: all-zero sample, cumulative shares are undefined.
	ErrorDivisionByZero = errors.New("sample sum is zero")

	// ErrorInvalidConfig: out-of-range alpha, unknown color, bad point size or empty label.
	ErrorInvalidConfig = errors.New("invalid render config")
)
