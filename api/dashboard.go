package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nightpulse-inc/nightpulse-api/activity"
)

// venueActivityBatch summarizes the requested venues in one pass for the
// owner dashboard. Every requested id is present in the response, venues
// without recent checks included.
func (s *Server) venueActivityBatch(c *gin.Context) {
	rawIDs := c.Query("ids")
	if rawIDs == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("ids not provided"))
		return
	}

	venueIDs := make([]uuid.UUID, 0)
	for _, raw := range strings.Split(rawIDs, ",") {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid venue ID: %s", raw))
			return
		}
		venueIDs = append(venueIDs, id)
	}

	now := time.Now().UTC()
	checks, err := s.store.ListRecentVibeChecksForVenues(venueIDs, now.Add(-s.recentWindow))
	if shouldInterupt(err, c) {
		return
	}

	summaries := activity.SummarizeBatch(checks, venueIDs, now, s.liveWindow)

	c.JSON(http.StatusOK, gin.H{"venues": summaries})
}

// venueSnapshots returns the activity rollups persisted by the background
// worker.
func (s *Server) venueSnapshots(c *gin.Context) {
	snapshots, err := s.store.ListVenueSnapshots()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}
