package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/nightpulse-inc/nightpulse-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("nightpulse")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS nightpulse`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO nightpulse").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Venue{},
		&schema.VibeCheck{},
		&schema.VenueActivitySnapshot{},
	).Error; err != nil {
		panic(err)
	}

	// serves both the recent-window feed query and the per-venue aggregation
	if err := db.Model(schema.VibeCheck{}).
		AddIndex("idx_vibe_checks_venue_created", "venue_id", "created_at").Error; err != nil {
		panic(err)
	}

	// serves the last-post lookup of the submission gate
	if err := db.Model(schema.VibeCheck{}).
		AddIndex("idx_vibe_checks_account_venue_created", "account_number", "venue_id", "created_at").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.VenueActivitySnapshot{}).
		AddUniqueIndex("idx_venue_activity_snapshots_venue", "venue_id").Error; err != nil {
		panic(err)
	}
}
