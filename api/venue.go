package api

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nightpulse-inc/nightpulse-api/activity"
	"github.com/nightpulse-inc/nightpulse-api/schema"
	"github.com/nightpulse-inc/nightpulse-api/store"
)

type venueFeedItem struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Address  string                 `json:"address"`
	Location schema.Location        `json:"location"`
	Activity schema.ActivitySummary `json:"activity"`
	Distance string                 `json:"distance,omitempty"`
}

// listVenues returns the live feed: every venue with its current activity
// summary, ranked live-first, then by recent count, keeping the original
// venue order between ties.
func (s *Server) listVenues(c *gin.Context) {
	venues, err := s.store.ListVenues()
	if shouldInterupt(err, c) {
		return
	}

	venueIDs := make([]uuid.UUID, 0, len(venues))
	for _, v := range venues {
		venueIDs = append(venueIDs, v.ID)
	}

	now := time.Now().UTC()
	checks, err := s.store.ListRecentVibeChecksForVenues(venueIDs, now.Add(-s.recentWindow))
	if shouldInterupt(err, c) {
		return
	}

	summaries := activity.SummarizeBatch(checks, venueIDs, now, s.liveWindow)
	userLoc := requesterLocation(c)

	items := make([]venueFeedItem, 0, len(venues))
	for _, v := range venues {
		item := venueFeedItem{
			ID:       v.ID.String(),
			Name:     v.Name,
			Address:  v.Address,
			Location: v.Location,
			Activity: summaries[v.ID],
		}

		if userLoc != nil && userLoc.Valid() && v.Location.Valid() {
			if label, err := activity.DescribeDistance(activity.HaversineDistance(*userLoc, v.Location)); err == nil {
				item.Distance = label
			}
		}

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Activity.HasLiveActivity != items[j].Activity.HasLiveActivity {
			return items[i].Activity.HasLiveActivity
		}
		return items[i].Activity.RecentCount > items[j].Activity.RecentCount
	})

	c.JSON(http.StatusOK, gin.H{"venues": items})
}

// venueDetail returns one venue with its activity summary, a "time ago"
// label for the latest check and, when the device position is known, the
// distance label plus the geofence verdict.
func (s *Server) venueDetail(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("venueID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid venue ID"))
		return
	}

	venue, err := s.store.GetVenue(venueID)
	if err != nil {
		switch err {
		case store.ErrVenueNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownVenue)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	now := time.Now().UTC()
	checks, err := s.store.ListRecentVibeChecks(venueID, now.Add(-s.recentWindow))
	if shouldInterupt(err, c) {
		return
	}

	summary := activity.Summarize(checks, now, s.liveWindow)

	resp := gin.H{
		"venue":    venue,
		"activity": summary,
	}

	if summary.LatestVibeCheck != nil {
		elapsed := now.Sub(summary.LatestVibeCheck.CreatedAt)
		if elapsed < 0 {
			elapsed = 0
		}
		if label, err := activity.FormatRecency(elapsed); err == nil {
			resp["latest_activity_ago"] = label
		}
	}

	if userLoc := requesterLocation(c); userLoc != nil {
		verification, err := activity.VerifyGeofence(*userLoc, *venue, s.geofenceRadiusMeters)
		if err == nil {
			resp["geofence"] = verification
			if label, err := activity.DescribeDistance(verification.DistanceMeters); err == nil {
				resp["distance"] = label
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
