package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nightpulse-inc/nightpulse-api/activity"
	"github.com/nightpulse-inc/nightpulse-api/schema"
	"github.com/nightpulse-inc/nightpulse-api/store"
)

// checkEligibility tells the client whether the requester may post a vibe
// check for the venue right now, and how far away it is when the device
// position is known.
func (s *Server) checkEligibility(c *gin.Context) {
	requester := c.GetString("requester")

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

	last, err := s.store.GetLastVibeCheck(requester, venueID)
	if shouldInterupt(err, c) {
		return
	}

	var lastPostAt *time.Time
	if last != nil {
		lastPostAt = &last.CreatedAt
	}

	eligibility := activity.EvaluateSubmission(lastPostAt, time.Now().UTC(), s.submissionCooldown)

	resp := gin.H{"eligibility": eligibility}

	if userLoc := requesterLocation(c); userLoc != nil {
		if verification, err := activity.VerifyGeofence(*userLoc, *venue, s.geofenceRadiusMeters); err == nil {
			resp["geofence"] = verification
			if label, err := activity.DescribeDistance(verification.DistanceMeters); err == nil {
				resp["distance"] = label
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

type vibeCheckParams struct {
	Rating   int              `json:"rating"`
	Comment  string           `json:"comment"`
	PhotoURL string           `json:"photo_url"`
	Location *schema.Location `json:"location"`
}

// postVibeCheck submits a vibe check. The request is refused when the device
// is outside the venue geofence or when the requester posted for the same
// venue inside the cooldown window. The insert itself re-checks the cooldown
// so two concurrent submissions cannot both land.
func (s *Server) postVibeCheck(c *gin.Context) {
	requester := c.GetString("requester")

	venueID, err := uuid.Parse(c.Param("venueID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid venue ID"))
		return
	}

	var params vibeCheckParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Rating < schema.MinRating || params.Rating > schema.MaxRating {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("rating out of range"))
		return
	}

	userLoc := params.Location
	if userLoc == nil {
		userLoc = requesterLocation(c)
	}
	if userLoc == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownRequesterLocation)
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

	verification, err := activity.VerifyGeofence(*userLoc, *venue, s.geofenceRadiusMeters)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !verification.IsValid {
		c.JSON(http.StatusForbidden, gin.H{
			"error":    errorOutsideGeofence,
			"geofence": verification,
		})
		c.Abort()
		return
	}

	now := time.Now().UTC()

	last, err := s.store.GetLastVibeCheck(requester, venueID)
	if shouldInterupt(err, c) {
		return
	}

	var lastPostAt *time.Time
	if last != nil {
		lastPostAt = &last.CreatedAt
	}

	eligibility := activity.EvaluateSubmission(lastPostAt, now, s.submissionCooldown)
	if !eligibility.CanPost {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       errorSubmissionCooldown,
			"eligibility": eligibility,
		})
		c.Abort()
		return
	}

	check := &schema.VibeCheck{
		VenueID:       venueID,
		AccountNumber: requester,
		Rating:        params.Rating,
		Comment:       params.Comment,
		PhotoURL:      params.PhotoURL,
		Location:      userLoc,
		CreatedAt:     now,
	}

	if err := s.store.CreateVibeCheck(check, s.submissionCooldown); err != nil {
		switch err {
		case store.ErrSubmissionCooldown:
			// lost the race against a concurrent submission
			c.JSON(http.StatusTooManyRequests, gin.H{"error": errorSubmissionCooldown})
			c.Abort()
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"vibe_check": check,
		"geofence":   verification,
	})
}
