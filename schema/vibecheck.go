package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// VibeCheck is a user-submitted status update about a venue. Rows are
// immutable once created.
type VibeCheck struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	VenueID       uuid.UUID `json:"venue_id" gorm:"type:uuid;index"`
	AccountNumber string    `json:"account_number"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	Location      *Location `json:"location,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time `json:"created_at"`
}
