package schema

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceVerification is the result of checking a user position against a
// venue's geofence. It is computed on demand and never persisted.
type GeofenceVerification struct {
	IsValid        bool    `json:"is_valid"`
	DistanceMeters float64 `json:"distance_meters"`
	VenueName      string  `json:"venue_name"`
}

// SubmissionEligibility tells whether an account may post a new vibe check
// for a venue right now. SecondsUntilReset is set only when CanPost is false.
type SubmissionEligibility struct {
	CanPost           bool       `json:"can_post"`
	LastPostAt        *time.Time `json:"last_post_at,omitempty"`
	SecondsUntilReset *int64     `json:"seconds_until_reset,omitempty"`
}

// ActivitySummary is the aggregate of the vibe checks posted for one venue
// inside the recent window. An empty window yields the zero summary:
// count 0, no average, not live, no latest check.
type ActivitySummary struct {
	RecentCount     int        `json:"recent_count"`
	AverageRating   *float64   `json:"average_busyness"`
	HasLiveActivity bool       `json:"has_live_activity"`
	LatestVibeCheck *VibeCheck `json:"latest_vibe_check"`
}

// BatchActivitySummary maps venue id to its summary. It always carries one
// entry per requested venue, including zero-valued entries for venues with
// no recent checks.
type BatchActivitySummary map[uuid.UUID]ActivitySummary
