package activity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

var testVenue = schema.Venue{
	Name: "Roadhouse",
	Location: schema.Location{
		Latitude:  25.0330,
		Longitude: 121.5654,
	},
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := schema.Location{Latitude: 25.0330, Longitude: 121.5654}
	b := schema.Location{Latitude: 25.0478, Longitude: 121.5319}

	assert.Equal(t, HaversineDistance(a, b), HaversineDistance(b, a))
	assert.Equal(t, 0.0, HaversineDistance(a, a))
}

func TestHaversineDistanceKnownPoints(t *testing.T) {
	// Taipei 101 to Taipei Main Station, roughly 5km apart
	a := schema.Location{Latitude: 25.0330, Longitude: 121.5654}
	b := schema.Location{Latitude: 25.0478, Longitude: 121.5170}

	d := HaversineDistance(a, b)
	assert.InDelta(t, 5150, d, 200)
}

func TestVerifyGeofenceInside(t *testing.T) {
	user := schema.Location{Latitude: 25.0331, Longitude: 121.5655}

	v, err := VerifyGeofence(user, testVenue, DefaultGeofenceRadiusMeters)
	assert.NoError(t, err)
	assert.True(t, v.IsValid)
	assert.True(t, v.DistanceMeters > 0)
	assert.Equal(t, "Roadhouse", v.VenueName)
}

func TestVerifyGeofenceOutside(t *testing.T) {
	user := schema.Location{Latitude: 25.0478, Longitude: 121.5319}

	v, err := VerifyGeofence(user, testVenue, DefaultGeofenceRadiusMeters)
	assert.NoError(t, err)
	assert.False(t, v.IsValid)
	assert.True(t, v.DistanceMeters > DefaultGeofenceRadiusMeters)
}

func TestVerifyGeofenceBoundaryInclusive(t *testing.T) {
	user := schema.Location{Latitude: 25.0340, Longitude: 121.5654}

	distance := HaversineDistance(user, testVenue.Location)
	v, err := VerifyGeofence(user, testVenue, distance)
	assert.NoError(t, err)
	assert.True(t, v.IsValid)
	assert.Equal(t, distance, v.DistanceMeters)
}

func TestVerifyGeofenceInvalidCoordinates(t *testing.T) {
	badPoints := []schema.Location{
		{Latitude: 91, Longitude: 0},
		{Latitude: -90.0001, Longitude: 0},
		{Latitude: 0, Longitude: 181},
		{Latitude: 0, Longitude: -180.5},
	}

	for _, p := range badPoints {
		_, err := VerifyGeofence(p, testVenue, DefaultGeofenceRadiusMeters)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}

	badVenue := testVenue
	badVenue.Location = schema.Location{Latitude: 100, Longitude: 0}
	_, err := VerifyGeofence(schema.Location{}, badVenue, DefaultGeofenceRadiusMeters)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
