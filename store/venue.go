package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

var ErrVenueNotFound = fmt.Errorf("venue not found")

// GetVenue finds a venue by its id
func (s *NightpulseStore) GetVenue(id uuid.UUID) (*schema.Venue, error) {
	var venue schema.Venue

	if err := s.ormDB.Where("id = ?", id).First(&venue).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	return &venue, nil
}

// ListVenues returns every venue ordered by creation time. The feed relies
// on this order as the tie-breaker of last resort when ranking by activity.
func (s *NightpulseStore) ListVenues() ([]schema.Venue, error) {
	venues := []schema.Venue{}

	if err := s.ormDB.Order("created_at asc").Find(&venues).Error; err != nil {
		return nil, err
	}

	return venues, nil
}
