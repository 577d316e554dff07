package activity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

var aggNow = time.Date(2020, 4, 25, 1, 0, 0, 0, time.UTC)

func check(venueID uuid.UUID, id string, rating int, age time.Duration) schema.VibeCheck {
	return schema.VibeCheck{
		ID:        uuid.MustParse(id),
		VenueID:   venueID,
		Rating:    rating,
		CreatedAt: aggNow.Add(-age),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, aggNow, DefaultLiveWindow)
	assert.Equal(t, schema.ActivitySummary{}, s)

	s = Summarize([]schema.VibeCheck{}, aggNow, DefaultLiveWindow)
	assert.Equal(t, 0, s.RecentCount)
	assert.Nil(t, s.AverageRating)
	assert.False(t, s.HasLiveActivity)
	assert.Nil(t, s.LatestVibeCheck)
}

func TestSummarizeAverageRating(t *testing.T) {
	venueID := uuid.New()
	checks := []schema.VibeCheck{
		check(venueID, "b69ff788-2a9e-4023-a3c6-d5a4bdbce055", 3, 3*time.Hour),
		check(venueID, "1c85b88f-5e8b-4df6-9e39-4c3c007a8e6e", 5, 90*time.Minute),
		check(venueID, "ac7c5489-0b8a-4da5-a59c-2d2a86b2cf10", 4, 10*time.Minute),
	}

	s := Summarize(checks, aggNow, DefaultLiveWindow)
	assert.Equal(t, 3, s.RecentCount)
	if assert.NotNil(t, s.AverageRating) {
		assert.Equal(t, 4.0, *s.AverageRating)
	}
	assert.True(t, s.HasLiveActivity)
	if assert.NotNil(t, s.LatestVibeCheck) {
		assert.Equal(t, "ac7c5489-0b8a-4da5-a59c-2d2a86b2cf10", s.LatestVibeCheck.ID.String())
	}
}

func TestSummarizeAverageRoundsHalfUp(t *testing.T) {
	venueID := uuid.New()
	checks := []schema.VibeCheck{
		check(venueID, "4bd9d4d7-5606-4e25-b91c-a55f2e44b043", 2, time.Hour),
		check(venueID, "6e25b5f2-4ff0-40fa-b480-5b8b3b7c94f9", 3, time.Hour),
	}

	s := Summarize(checks, aggNow, DefaultLiveWindow)
	if assert.NotNil(t, s.AverageRating) {
		assert.Equal(t, 2.5, *s.AverageRating)
	}
}

func TestSummarizeLiveWindowBoundary(t *testing.T) {
	venueID := uuid.New()

	atBoundary := []schema.VibeCheck{
		check(venueID, "7f0e5b74-0a2c-4f5d-8c93-9d01a8c2ed5a", 3, DefaultLiveWindow),
	}
	s := Summarize(atBoundary, aggNow, DefaultLiveWindow)
	assert.True(t, s.HasLiveActivity)

	beyond := []schema.VibeCheck{
		check(venueID, "7f0e5b74-0a2c-4f5d-8c93-9d01a8c2ed5a", 3, DefaultLiveWindow+time.Second),
	}
	s = Summarize(beyond, aggNow, DefaultLiveWindow)
	assert.Equal(t, 1, s.RecentCount)
	assert.False(t, s.HasLiveActivity)
}

func TestSummarizeLatestTieBrokenByID(t *testing.T) {
	venueID := uuid.New()
	checks := []schema.VibeCheck{
		check(venueID, "00000000-0000-0000-0000-000000000002", 4, time.Hour),
		check(venueID, "00000000-0000-0000-0000-000000000001", 2, time.Hour),
	}

	s := Summarize(checks, aggNow, DefaultLiveWindow)
	if assert.NotNil(t, s.LatestVibeCheck) {
		assert.Equal(t, "00000000-0000-0000-0000-000000000002", s.LatestVibeCheck.ID.String())
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	venueID := uuid.New()
	checks := []schema.VibeCheck{
		check(venueID, "b69ff788-2a9e-4023-a3c6-d5a4bdbce055", 3, 3*time.Hour),
		check(venueID, "ac7c5489-0b8a-4da5-a59c-2d2a86b2cf10", 4, 10*time.Minute),
	}

	first := Summarize(checks, aggNow, DefaultLiveWindow)
	second := Summarize(checks, aggNow, DefaultLiveWindow)
	assert.Equal(t, first, second)
}

func TestSummarizeBatchCoversEveryVenue(t *testing.T) {
	venueA := uuid.New()
	venueB := uuid.New()
	venueIgnored := uuid.New()

	checks := []schema.VibeCheck{
		check(venueA, "b69ff788-2a9e-4023-a3c6-d5a4bdbce055", 3, 30*time.Minute),
		check(venueA, "ac7c5489-0b8a-4da5-a59c-2d2a86b2cf10", 5, 3*time.Hour),
		check(venueIgnored, "1c85b88f-5e8b-4df6-9e39-4c3c007a8e6e", 1, time.Minute),
	}

	summaries := SummarizeBatch(checks, []uuid.UUID{venueA, venueB}, aggNow, DefaultLiveWindow)
	assert.Len(t, summaries, 2)

	a, ok := summaries[venueA]
	assert.True(t, ok)
	assert.Equal(t, 2, a.RecentCount)
	if assert.NotNil(t, a.AverageRating) {
		assert.Equal(t, 4.0, *a.AverageRating)
	}
	assert.True(t, a.HasLiveActivity)

	b, ok := summaries[venueB]
	assert.True(t, ok, "a requested venue without checks must still get an entry")
	assert.Equal(t, 0, b.RecentCount)
	assert.Nil(t, b.AverageRating)
	assert.False(t, b.HasLiveActivity)
	assert.Nil(t, b.LatestVibeCheck)

	_, ok = summaries[venueIgnored]
	assert.False(t, ok)
}
