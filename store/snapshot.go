package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

// UpsertVenueSnapshot writes the background-computed activity rollup for a
// venue, replacing any previous snapshot of the same venue.
func (s *NightpulseStore) UpsertVenueSnapshot(snapshot *schema.VenueActivitySnapshot) error {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	snapshot.UpdatedAt = time.Now().UTC()

	return s.ormDB.Exec(
		`INSERT INTO venue_activity_snapshots
			(id, venue_id, recent_count, average_rating, has_live_activity, last_vibe_check_at, night_of, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (venue_id) DO UPDATE SET
			recent_count = EXCLUDED.recent_count,
			average_rating = EXCLUDED.average_rating,
			has_live_activity = EXCLUDED.has_live_activity,
			last_vibe_check_at = EXCLUDED.last_vibe_check_at,
			night_of = EXCLUDED.night_of,
			updated_at = EXCLUDED.updated_at;`,
		snapshot.ID,
		snapshot.VenueID,
		snapshot.RecentCount,
		snapshot.AverageRating,
		snapshot.HasLiveActivity,
		snapshot.LastVibeCheckAt,
		snapshot.NightOf,
		snapshot.UpdatedAt,
	).Error
}

// ListVenueSnapshots returns every persisted snapshot, most recently updated
// first, for the dashboard overview.
func (s *NightpulseStore) ListVenueSnapshots() ([]schema.VenueActivitySnapshot, error) {
	snapshots := []schema.VenueActivitySnapshot{}

	if err := s.ormDB.Order("updated_at desc").Find(&snapshots).Error; err != nil {
		return nil, err
	}

	return snapshots, nil
}
