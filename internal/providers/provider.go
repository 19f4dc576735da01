package providers

import (
	"context"

	"nhl-stats-crawler/internal/domain"
	"nhl-stats-crawler/internal/timeutil"
)

// ScheduleProvider fetches the days and games scheduled within a date range.
// Days without any scheduled games may be absent from the result entirely.
type ScheduleProvider interface {
	GetSchedule(ctx context.Context, dates timeutil.DateRange) ([]domain.ScheduleDay, error)
}

// BoxscoreProvider fetches the normalized box score for a single game.
type BoxscoreProvider interface {
	GetBoxscore(ctx context.Context, gameID string) (domain.Boxscore, error)
}

// StatsProvider combines all provider capabilities. Implementations must be
// safe for concurrent use; the crawler fans out box-score fetches.
type StatsProvider interface {
	ScheduleProvider
	BoxscoreProvider
}
