package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nightpulse-inc/nightpulse-api/activity"
	"github.com/nightpulse-inc/nightpulse-api/api/mocks"
	"github.com/nightpulse-inc/nightpulse-api/schema"
	"github.com/nightpulse-inc/nightpulse-api/store"
)

func testServer(m *mocks.MockNightpulseCore) Server {
	return Server{
		store:                m,
		geofenceRadiusMeters: activity.DefaultGeofenceRadiusMeters,
		submissionCooldown:   activity.DefaultSubmissionCooldown,
		recentWindow:         activity.DefaultRecentWindow,
		liveWindow:           activity.DefaultLiveWindow,
	}
}

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeRequesterMiddleware())
	router.Use(s.requesterLocationMiddleware)
	router.GET("/venues", s.listVenues)
	router.GET("/venues/:venueID", s.venueDetail)
	router.GET("/venues/:venueID/eligibility", s.checkEligibility)
	router.POST("/venues/:venueID/vibe-checks", s.postVibeCheck)
	return router
}

type feedResponse struct {
	Venues []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Distance string `json:"distance"`
		Activity struct {
			RecentCount     int      `json:"recent_count"`
			AverageBusyness *float64 `json:"average_busyness"`
			HasLiveActivity bool     `json:"has_live_activity"`
		} `json:"activity"`
	} `json:"venues"`
}

func TestListVenuesRanksLiveFirst(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockNightpulseCore(ctl)
	s := testServer(m)

	quiet := schema.Venue{ID: uuid.New(), Name: "Quiet Bar"}
	busy := schema.Venue{ID: uuid.New(), Name: "Busy Club"}

	m.EXPECT().ListVenues().Return([]schema.Venue{quiet, busy}, nil).Times(1)
	m.EXPECT().ListRecentVibeChecksForVenues(gomock.Any(), gomock.Any()).Return([]schema.VibeCheck{
		{
			ID:        uuid.New(),
			VenueID:   busy.ID,
			Rating:    5,
			CreatedAt: time.Now().UTC().Add(-10 * time.Minute),
		},
	}, nil).Times(1)

	router := testRouter(&s)

	req := httptest.NewRequest("GET", "/venues", nil)
	req.Header.Set("Account-Number", "account-test")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp feedResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Venues, 2)

	assert.Equal(t, busy.ID.String(), resp.Venues[0].ID, "the live venue must rank first")
	assert.True(t, resp.Venues[0].Activity.HasLiveActivity)
	assert.Equal(t, 1, resp.Venues[0].Activity.RecentCount)

	assert.Equal(t, quiet.ID.String(), resp.Venues[1].ID)
	assert.False(t, resp.Venues[1].Activity.HasLiveActivity)
	assert.Equal(t, 0, resp.Venues[1].Activity.RecentCount)
	assert.Nil(t, resp.Venues[1].Activity.AverageBusyness, "a venue without checks must report no average")
}

func TestListVenuesRequiresRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockNightpulseCore(ctl)
	s := testServer(m)
	router := testRouter(&s)

	req := httptest.NewRequest("GET", "/venues", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVenueDetailIncludesDistanceAndRecency(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockNightpulseCore(ctl)
	s := testServer(m)

	venue := schema.Venue{
		ID:       uuid.New(),
		Name:     "Roadhouse",
		Location: schema.Location{Latitude: 25.0330, Longitude: 121.5654},
	}

	m.EXPECT().GetVenue(venue.ID).Return(&venue, nil).Times(1)
	m.EXPECT().ListRecentVibeChecks(venue.ID, gomock.Any()).Return([]schema.VibeCheck{
		{
			ID:        uuid.New(),
			VenueID:   venue.ID,
			Rating:    4,
			CreatedAt: time.Now().UTC().Add(-30 * time.Minute),
		},
	}, nil).Times(1)

	router := testRouter(&s)

	req := httptest.NewRequest("GET", "/venues/"+venue.ID.String(), nil)
	req.Header.Set("Account-Number", "account-test")
	req.Header.Set("Geo-Position", "25.0331;121.5655")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var ago string
	assert.NoError(t, json.Unmarshal(resp["latest_activity_ago"], &ago))
	assert.Equal(t, "30m ago", ago)

	var distance string
	assert.NoError(t, json.Unmarshal(resp["distance"], &distance))
	assert.Equal(t, "Very close", distance)

	var verification schema.GeofenceVerification
	assert.NoError(t, json.Unmarshal(resp["geofence"], &verification))
	assert.True(t, verification.IsValid)
	assert.Equal(t, "Roadhouse", verification.VenueName)
}

func TestVenueDetailUnknownVenue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockNightpulseCore(ctl)
	s := testServer(m)

	venueID := uuid.New()
	m.EXPECT().GetVenue(venueID).Return(nil, store.ErrVenueNotFound).Times(1)

	router := testRouter(&s)

	req := httptest.NewRequest("GET", "/venues/"+venueID.String(), nil)
	req.Header.Set("Account-Number", "account-test")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
