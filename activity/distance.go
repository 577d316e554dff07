package activity

import (
	"fmt"
	"math"
)

// DescribeDistance maps a distance in meters to a stable display bucket.
// Buckets are left-inclusive and evaluated in order; rounding is
// half-away-from-zero throughout (math.Round).
//
//	< 50      "Very close"
//	< 100     "Close enough"
//	< 500     exact meters, e.g. "320m away"
//	< 1000    nearest hundred meters, e.g. "700m away"
//	>= 1000   one-decimal kilometers, e.g. "2.3km away"
func DescribeDistance(meters float64) (string, error) {
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
		return "", fmt.Errorf("distance must be a non-negative finite number: %w", ErrInvalidInput)
	}

	switch {
	case meters < 50:
		return "Very close", nil
	case meters < 100:
		return "Close enough", nil
	case meters < 500:
		return fmt.Sprintf("%dm away", int(math.Round(meters))), nil
	case meters < 1000:
		return fmt.Sprintf("%dm away", int(math.Round(meters/100))*100), nil
	default:
		return fmt.Sprintf("%.1fkm away", meters/1000), nil
	}
}
