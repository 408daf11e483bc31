package service

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when height or weight cannot be used for a
// calculation. It is the only error the calculation core produces.
var ErrInvalidInput = errors.New("invalid height or weight values")

// Validate checks that height and weight are positive, finite numbers.
func Validate(heightCm, weightKg float64) error {
	if !usable(heightCm) {
		return fmt.Errorf("%w: height_cm=%v", ErrInvalidInput, heightCm)
	}
	if !usable(weightKg) {
		return fmt.Errorf("%w: weight_kg=%v", ErrInvalidInput, weightKg)
	}
	return nil
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
