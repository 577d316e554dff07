package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

// nightpulse main datastore
type NightpulseCore interface {
	Ping() error

	// Venue
	GetVenue(id uuid.UUID) (*schema.Venue, error)
	ListVenues() ([]schema.Venue, error)

	// VibeCheck
	GetLastVibeCheck(accountNumber string, venueID uuid.UUID) (*schema.VibeCheck, error)
	ListRecentVibeChecks(venueID uuid.UUID, since time.Time) ([]schema.VibeCheck, error)
	ListRecentVibeChecksForVenues(venueIDs []uuid.UUID, since time.Time) ([]schema.VibeCheck, error)
	CreateVibeCheck(check *schema.VibeCheck, cooldown time.Duration) error

	// Snapshot
	UpsertVenueSnapshot(snapshot *schema.VenueActivitySnapshot) error
	ListVenueSnapshots() ([]schema.VenueActivitySnapshot, error)
}

// NightpulseStore is an implementation of NightpulseCore
type NightpulseStore struct {
	ormDB *gorm.DB
}

func NewNightpulseStore(ormDB *gorm.DB) *NightpulseStore {
	return &NightpulseStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *NightpulseStore) Ping() error {
	return s.ormDB.DB().Ping()
}
