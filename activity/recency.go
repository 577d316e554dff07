package activity

import (
	"fmt"
	"time"
)

// FormatRecency maps an elapsed duration to a bucketed "time ago" label.
// Buckets are derived from whole minutes (floor):
//
//	0 minutes      "Just now"
//	< 60 minutes   "12m ago"
//	< 24 hours     "3h ago"
//	otherwise      "2d ago"
//
// Negative elapsed fails; callers must clamp clock skew to zero themselves.
func FormatRecency(elapsed time.Duration) (string, error) {
	if elapsed < 0 {
		return "", fmt.Errorf("elapsed duration must not be negative: %w", ErrInvalidInput)
	}

	minutes := int64(elapsed / time.Minute)

	switch {
	case minutes == 0:
		return "Just now", nil
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes), nil
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60), nil
	default:
		return fmt.Sprintf("%dd ago", minutes/(24*60)), nil
	}
}
