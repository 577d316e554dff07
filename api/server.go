package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/nightpulse-inc/nightpulse-api/activity"
	"github.com/nightpulse-inc/nightpulse-api/logmodule"
	"github.com/nightpulse-inc/nightpulse-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.NightpulseCore

	// job pool enqueuer
	background *machinery.Server

	// activity engine parameters
	geofenceRadiusMeters float64
	submissionCooldown   time.Duration
	recentWindow         time.Duration
	liveWindow           time.Duration
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, backgroundEnqueuer *machinery.Server) *Server {
	return &Server{
		store:                store.NewNightpulseStore(ormDB),
		background:           backgroundEnqueuer,
		geofenceRadiusMeters: geofenceRadius(),
		submissionCooldown:   submissionCooldown(),
		recentWindow:         recentWindow(),
		liveWindow:           liveWindow(),
	}
}

func geofenceRadius() float64 {
	if r := viper.GetFloat64("activity.geofence_radius_meters"); r > 0 {
		return r
	}
	return activity.DefaultGeofenceRadiusMeters
}

func submissionCooldown() time.Duration {
	if m := viper.GetInt("activity.cooldown_minutes"); m > 0 {
		return time.Duration(m) * time.Minute
	}
	return activity.DefaultSubmissionCooldown
}

func recentWindow() time.Duration {
	if h := viper.GetInt("activity.recent_window_hours"); h > 0 {
		return time.Duration(h) * time.Hour
	}
	return activity.DefaultRecentWindow
}

func liveWindow() time.Duration {
	if h := viper.GetInt("activity.live_window_hours"); h > 0 {
		return time.Duration(h) * time.Hour
	}
	return activity.DefaultLiveWindow
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.Use(s.recognizeRequesterMiddleware())
	apiRoute.Use(s.requesterLocationMiddleware)

	venueRoute := apiRoute.Group("/venues")
	{
		venueRoute.GET("", s.listVenues)
		venueRoute.GET("/:venueID", s.venueDetail)
		venueRoute.GET("/:venueID/eligibility", s.checkEligibility)
		venueRoute.POST("/:venueID/vibe-checks", s.postVibeCheck)
	}

	dashboardRoute := r.Group("/dashboard")
	dashboardRoute.Use(logmodule.Ginrus("Dashboard"))
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Api-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	dashboardRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.dashboard")))
	{
		dashboardRoute.GET("/venues/activity", s.venueActivityBatch)
		dashboardRoute.GET("/venues/snapshots", s.venueSnapshots)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/refresh-snapshots", s.adminRefreshSnapshots)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Nightpulse 0.1",
		},
	})
}

// apikeyAuthentication gates internal-only routes behind a static API token
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// recognizeRequesterMiddleware attaches the requesting account number to the
// context. Session validation happens upstream at the gateway; this server
// only requires the identity to be present.
func (s *Server) recognizeRequesterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetHeader("Account-Number")
		if requester == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("requester", requester)
		c.Next()
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
