package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// requesterLocationMiddleware attaches the device position from the
// Geo-Position header to the request context. The header is optional: read
// endpoints degrade to activity-only responses without it, and posting a
// vibe check rejects on its own when the position is missing.
func (s *Server) requesterLocationMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")

	if gp != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			c.Set("requester_location", &schema.Location{
				Latitude:  lat,
				Longitude: long,
			})
		} else {
			c.Error(err)
		}
	}
	c.Next()
}

// requesterLocation returns the position parsed from the Geo-Position
// header, or nil when the device did not send one.
func requesterLocation(c *gin.Context) *schema.Location {
	if loc, ok := c.Get("requester_location"); ok {
		return loc.(*schema.Location)
	}
	return nil
}
