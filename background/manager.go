package background

import (
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"

	"github.com/nightpulse-inc/nightpulse-api/activity"
	"github.com/nightpulse-inc/nightpulse-api/store"
)

// BackgroundManager is a struct for nightpulse background manager
type BackgroundManager struct {
	store store.NightpulseCore

	taskServer *machinery.Server

	worker *machinery.Worker

	recentWindow time.Duration
	liveWindow   time.Duration
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	recentWindow := activity.DefaultRecentWindow
	if h := viper.GetInt("activity.recent_window_hours"); h > 0 {
		recentWindow = time.Duration(h) * time.Hour
	}

	liveWindow := activity.DefaultLiveWindow
	if h := viper.GetInt("activity.live_window_hours"); h > 0 {
		liveWindow = time.Duration(h) * time.Hour
	}

	return &BackgroundManager{
		store:        store.NewNightpulseStore(ormDB),
		taskServer:   taskServer,
		recentWindow: recentWindow,
		liveWindow:   liveWindow,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("nightpulse-worker", 5)
	return m.worker.Launch()
}
