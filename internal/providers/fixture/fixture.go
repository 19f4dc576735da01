// Package fixture serves a deterministic schedule and box scores for local
// runs and bootstrapping, without touching the real stats API.
package fixture

import (
	"context"
	"fmt"

	"nhl-stats-crawler/internal/domain"
	"nhl-stats-crawler/internal/timeutil"
)

// Provider returns a static set of games useful for local testing.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// GetSchedule returns one game for every day in the range.
func (p *Provider) GetSchedule(ctx context.Context, dates timeutil.DateRange) ([]domain.ScheduleDay, error) {
	_ = ctx

	days := make([]domain.ScheduleDay, 0)
	for i, day := range dates.Dates() {
		days = append(days, domain.ScheduleDay{
			Date:  timeutil.FormatDate(day),
			Games: []domain.GameRef{{GameID: fmt.Sprintf("999%07d", i+1)}},
		})
	}
	return days, nil
}

// GetBoxscore returns a canned box score: two home skaters, one home
// goaltender, and one away skater.
func (p *Provider) GetBoxscore(ctx context.Context, gameID string) (domain.Boxscore, error) {
	_ = ctx
	_ = gameID

	oilers := "Edmonton Oilers"
	avalanche := "Colorado Avalanche"
	mcdavid := "Connor McDavid"
	draisaitl := "Leon Draisaitl"
	skinner := "Stuart Skinner"
	mackinnon := "Nathan MacKinnon"

	return domain.Boxscore{
		Home: domain.TeamSide{Players: map[string]domain.PlayerEntry{
			"ID8478402": {
				PersonID:        "8478402",
				FullName:        &mcdavid,
				CurrentTeamName: &oilers,
				Skater:          &domain.SkaterStats{Assists: intPtr(2), Goals: intPtr(1)},
			},
			"ID8477934": {
				PersonID:        "8477934",
				FullName:        &draisaitl,
				CurrentTeamName: &oilers,
				Skater:          &domain.SkaterStats{Assists: intPtr(1), Goals: intPtr(2)},
			},
			"ID8479973": {
				PersonID:        "8479973",
				FullName:        &skinner,
				CurrentTeamName: &oilers,
				Goalie:          true,
			},
		}},
		Away: domain.TeamSide{Players: map[string]domain.PlayerEntry{
			"ID8477492": {
				PersonID:        "8477492",
				FullName:        &mackinnon,
				CurrentTeamName: &avalanche,
				Skater:          &domain.SkaterStats{Assists: intPtr(0), Goals: intPtr(1)},
			},
		}},
	}, nil
}

func intPtr(i int) *int { return &i }
