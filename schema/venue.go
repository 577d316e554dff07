package schema

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a place users can check the vibe of. Venue records are managed by
// the dashboard backend; this service only reads them.
type Venue struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Location  Location  `json:"location" gorm:"type:jsonb;not null;default '{}'"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
