package activity

import (
	"math"
	"time"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

// EvaluateSubmission decides whether an account may post a new vibe check for
// a venue given its most recent post there. The gate is stateless: fetching
// the last post (one query, newest first, limit 1) and the clock both belong
// to the caller. A nil lastPostAt means no prior post and always allows.
func EvaluateSubmission(lastPostAt *time.Time, now time.Time, cooldown time.Duration) schema.SubmissionEligibility {
	if lastPostAt == nil {
		return schema.SubmissionEligibility{CanPost: true}
	}

	elapsed := now.Sub(*lastPostAt)
	if elapsed >= cooldown {
		return schema.SubmissionEligibility{
			CanPost:    true,
			LastPostAt: lastPostAt,
		}
	}

	// strictly positive while the cooldown is running
	remaining := int64(math.Ceil((cooldown - elapsed).Seconds()))
	if remaining < 1 {
		remaining = 1
	}

	return schema.SubmissionEligibility{
		CanPost:           false,
		LastPostAt:        lastPostAt,
		SecondsUntilReset: &remaining,
	}
}
