package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

var ErrSubmissionCooldown = fmt.Errorf("a vibe check for this venue was already submitted within the cooldown window")

// GetLastVibeCheck returns the most recent vibe check of an account for a
// venue, or nil when the account has never posted there. Single query,
// newest first, limit 1.
func (s *NightpulseStore) GetLastVibeCheck(accountNumber string, venueID uuid.UUID) (*schema.VibeCheck, error) {
	var check schema.VibeCheck

	err := s.ormDB.
		Where("account_number = ? AND venue_id = ?", accountNumber, venueID).
		Order("created_at desc").
		First(&check).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	return &check, nil
}

// ListRecentVibeChecks returns the checks of one venue created at or after
// `since`, newest first.
func (s *NightpulseStore) ListRecentVibeChecks(venueID uuid.UUID, since time.Time) ([]schema.VibeCheck, error) {
	checks := []schema.VibeCheck{}

	err := s.ormDB.
		Where("venue_id = ? AND created_at >= ?", venueID, since).
		Order("created_at desc").
		Find(&checks).Error
	if err != nil {
		return nil, err
	}

	return checks, nil
}

// ListRecentVibeChecksForVenues returns the checks of all listed venues
// created at or after `since` in one query, for batch summarization.
func (s *NightpulseStore) ListRecentVibeChecksForVenues(venueIDs []uuid.UUID, since time.Time) ([]schema.VibeCheck, error) {
	checks := []schema.VibeCheck{}
	if len(venueIDs) == 0 {
		return checks, nil
	}

	ids := make([]string, 0, len(venueIDs))
	for _, id := range venueIDs {
		ids = append(ids, id.String())
	}

	if err := s.ormDB.Raw(
		`SELECT * FROM vibe_checks
		WHERE venue_id = ANY(?::uuid[]) AND created_at >= ?
		ORDER BY created_at DESC;`,
		pq.Array(ids),
		since,
	).Scan(&checks).Error; err != nil {
		return nil, err
	}

	return checks, nil
}

// CreateVibeCheck inserts a vibe check guarded by the cooldown window: the
// row is only written when the same account has no check for the same venue
// younger than the cooldown. Two concurrent submissions can both pass the
// eligibility read; this insert is what actually closes that race, so a
// zero-row result maps to ErrSubmissionCooldown rather than being retried.
func (s *NightpulseStore) CreateVibeCheck(check *schema.VibeCheck, cooldown time.Duration) error {
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CreatedAt.IsZero() {
		check.CreatedAt = time.Now().UTC()
	}

	// a nil *Location must reach the driver as SQL NULL, not a typed nil
	var submittedFrom interface{}
	if check.Location != nil {
		submittedFrom = *check.Location
	}

	result := s.ormDB.Exec(
		`INSERT INTO vibe_checks (id, venue_id, account_number, rating, comment, photo_url, location, created_at)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM vibe_checks
			WHERE account_number = ? AND venue_id = ? AND created_at > ?
		);`,
		check.ID,
		check.VenueID,
		check.AccountNumber,
		check.Rating,
		check.Comment,
		check.PhotoURL,
		submittedFrom,
		check.CreatedAt,
		check.AccountNumber,
		check.VenueID,
		check.CreatedAt.Add(-cooldown),
	)
	if result.Error != nil {
		if pqErr, ok := result.Error.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrSubmissionCooldown
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSubmissionCooldown
	}

	return nil
}
