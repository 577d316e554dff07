package activity

import (
	"fmt"
	"math"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

// mean Earth radius
const earthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance between two points in
// meters. It is symmetric and zero iff the points are identical.
func HaversineDistance(from, to schema.Location) float64 {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLat := (to.Latitude - from.Latitude) * math.Pi / 180
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// VerifyGeofence checks whether userLoc is close enough to the venue to post
// a vibe check. The boundary is inclusive: a distance exactly equal to
// radiusMeters passes. Obtaining userLoc in the first place is the caller's
// problem; this only computes geometry over two well-formed points.
func VerifyGeofence(userLoc schema.Location, venue schema.Venue, radiusMeters float64) (schema.GeofenceVerification, error) {
	if !userLoc.Valid() {
		return schema.GeofenceVerification{}, fmt.Errorf("user coordinates out of range: %w", ErrInvalidInput)
	}
	if !venue.Location.Valid() {
		return schema.GeofenceVerification{}, fmt.Errorf("venue coordinates out of range: %w", ErrInvalidInput)
	}

	distance := HaversineDistance(userLoc, venue.Location)

	return schema.GeofenceVerification{
		IsValid:        distance <= radiusMeters,
		DistanceMeters: distance,
		VenueName:      venue.Name,
	}, nil
}
