package utils

import (
	"fmt"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns a location of a GMT-X format timezone from a pre-defined locations map.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	return nil
}

// nights roll over at 6am venue-local time
const nightRolloverHour = 6

// NightOf attributes an instant to the venue-local "service night" it belongs
// to: anything before the rollover hour counts towards the previous calendar
// day. An unknown timezone falls back to UTC.
func NightOf(t time.Time, timezone string) string {
	loc := GetLocation(timezone)
	if loc == nil {
		loc = time.UTC
	}

	local := t.In(loc)
	if local.Hour() < nightRolloverHour {
		local = local.AddDate(0, 0, -1)
	}

	return local.Format("2006-01-02")
}
