package activity

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

// Summarize reduces the vibe checks of a single venue into its activity
// summary. The slice is expected to be pre-filtered to the recent window by
// the caller; no inclusion filter is applied here. An empty slice yields the
// zero summary and is not an error.
//
// The average rating is rounded half-away-from-zero to one decimal. The
// latest check is the one with the greatest CreatedAt, ties broken by the
// greater ID so the result is deterministic.
func Summarize(checks []schema.VibeCheck, now time.Time, liveWindow time.Duration) schema.ActivitySummary {
	if len(checks) == 0 {
		return schema.ActivitySummary{}
	}

	var ratingSum float64
	var hasLive bool
	latest := checks[0]

	for i, c := range checks {
		ratingSum += float64(c.Rating)

		if now.Sub(c.CreatedAt) <= liveWindow {
			hasLive = true
		}

		if i == 0 {
			continue
		}
		if c.CreatedAt.After(latest.CreatedAt) ||
			(c.CreatedAt.Equal(latest.CreatedAt) && c.ID.String() > latest.ID.String()) {
			latest = c
		}
	}

	average := math.Round(ratingSum/float64(len(checks))*10) / 10

	return schema.ActivitySummary{
		RecentCount:     len(checks),
		AverageRating:   &average,
		HasLiveActivity: hasLive,
		LatestVibeCheck: &latest,
	}
}

// SummarizeBatch groups checks by venue and summarizes each group. Every
// requested venue id gets an entry, zero-valued when it has no checks, so
// callers can rank a venue list without a second existence check. Checks for
// venues outside venueIDs are ignored.
func SummarizeBatch(checks []schema.VibeCheck, venueIDs []uuid.UUID, now time.Time, liveWindow time.Duration) schema.BatchActivitySummary {
	requested := make(map[uuid.UUID]bool, len(venueIDs))
	for _, id := range venueIDs {
		requested[id] = true
	}

	grouped := make(map[uuid.UUID][]schema.VibeCheck)
	for _, c := range checks {
		if requested[c.VenueID] {
			grouped[c.VenueID] = append(grouped[c.VenueID], c)
		}
	}

	summaries := make(schema.BatchActivitySummary, len(venueIDs))
	for _, id := range venueIDs {
		summaries[id] = Summarize(grouped[id], now, liveWindow)
	}

	return summaries
}
