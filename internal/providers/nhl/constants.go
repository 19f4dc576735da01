package nhl

import "time"

const providerName = "nhl-statsapi"

const (
	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBodyBytes  = 512
)

// Operation names used for error context and metrics attributes.
const (
	OpSchedule = "schedule"
	OpBoxscore = "boxscore"
)
