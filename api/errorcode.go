package api

import "github.com/nightpulse-inc/nightpulse-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "unknown venue",
		1101: "requester location is unknown",
		1102: "too far away from the venue to post a vibe check",
		1103: store.ErrSubmissionCooldown.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnknownVenue             = errorJSON(1100)
	errorUnknownRequesterLocation = errorJSON(1101)
	errorOutsideGeofence          = errorJSON(1102)
	errorSubmissionCooldown       = errorJSON(1103)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
