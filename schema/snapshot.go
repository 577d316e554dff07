package schema

import (
	"time"

	"github.com/google/uuid"
)

// VenueActivitySnapshot is the persisted rollup of a venue's recent activity,
// recomputed by the background worker for dashboard analytics. The live API
// never reads it when serving the mobile feed.
type VenueActivitySnapshot struct {
	ID              uuid.UUID  `json:"-" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	VenueID         uuid.UUID  `json:"venue_id" gorm:"type:uuid;unique_index"`
	RecentCount     int        `json:"recent_count"`
	AverageRating   *float64   `json:"average_busyness"`
	HasLiveActivity bool       `json:"has_live_activity"`
	LastVibeCheckAt *time.Time `json:"last_vibe_check_at"`
	NightOf         string     `json:"night_of"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
