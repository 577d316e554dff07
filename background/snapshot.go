package background

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nightpulse-inc/nightpulse-api/activity"
	"github.com/nightpulse-inc/nightpulse-api/schema"
	"github.com/nightpulse-inc/nightpulse-api/utils"
)

// RefreshVenueSnapshots recomputes the activity rollup of every venue and
// persists the result for the dashboard. The computation itself is the same
// summarizer the live feed uses, fed from a fresh recent-window query.
func (m *BackgroundManager) RefreshVenueSnapshots() error {
	venues, err := m.store.ListVenues()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	since := now.Add(-m.recentWindow)

	for _, venue := range venues {
		checks, err := m.store.ListRecentVibeChecks(venue.ID, since)
		if err != nil {
			log.WithField("prefix", "background").WithError(err).
				Errorf("fail to query recent vibe checks for venue %s", venue.ID)
			return err
		}

		summary := activity.Summarize(checks, now, m.liveWindow)

		snapshot := &schema.VenueActivitySnapshot{
			VenueID:         venue.ID,
			RecentCount:     summary.RecentCount,
			AverageRating:   summary.AverageRating,
			HasLiveActivity: summary.HasLiveActivity,
			NightOf:         utils.NightOf(now, venue.Timezone),
		}
		if summary.LatestVibeCheck != nil {
			snapshot.LastVibeCheckAt = &summary.LatestVibeCheck.CreatedAt
		}

		if err := m.store.UpsertVenueSnapshot(snapshot); err != nil {
			log.WithField("prefix", "background").WithError(err).
				Errorf("fail to upsert snapshot for venue %s", venue.ID)
			return err
		}
	}

	log.WithField("prefix", "background").Infof("refreshed %d venue snapshots", len(venues))

	return nil
}
