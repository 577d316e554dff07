// Package activity implements the venue activity engine: geofence
// verification, submission throttling, vibe check aggregation and the
// human-readable distance/recency buckets. Every function is pure and takes
// time as an explicit argument; callers own all queries and clocks.
package activity

import (
	"fmt"
	"time"
)

const (
	DefaultGeofenceRadiusMeters = 100.0
	DefaultSubmissionCooldown   = time.Hour
	DefaultRecentWindow         = 4 * time.Hour
	DefaultLiveWindow           = 2 * time.Hour
)

// ErrInvalidInput covers every malformed-input case: out-of-range
// coordinates, negative distances, negative elapsed durations. It is a
// caller-side defect, never a transient condition.
var ErrInvalidInput = fmt.Errorf("invalid input")
