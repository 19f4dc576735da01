package nhl

import (
	"strconv"

	"nhl-stats-crawler/internal/domain"
)

func mapSchedule(payload scheduleResponse) []domain.ScheduleDay {
	days := make([]domain.ScheduleDay, 0, len(payload.Dates))
	for _, d := range payload.Dates {
		days = append(days, mapScheduleDay(d))
	}
	return days
}

func mapScheduleDay(d scheduleDateResponse) domain.ScheduleDay {
	games := make([]domain.GameRef, 0, len(d.Games))
	for _, g := range d.Games {
		games = append(games, domain.GameRef{GameID: strconv.FormatInt(g.GamePk, 10)})
	}
	return domain.ScheduleDay{Date: d.Date, Games: games}
}

func mapBoxscore(payload boxscoreResponse) domain.Boxscore {
	return domain.Boxscore{
		Home: mapTeamSide(payload.Teams.Home),
		Away: mapTeamSide(payload.Teams.Away),
	}
}

func mapTeamSide(side teamSideResponse) domain.TeamSide {
	players := make(map[string]domain.PlayerEntry, len(side.Players))
	for key, p := range side.Players {
		players[key] = mapPlayer(p)
	}
	return domain.TeamSide{Players: players}
}

func mapPlayer(p playerResponse) domain.PlayerEntry {
	entry := domain.PlayerEntry{
		PersonID: strconv.FormatInt(p.Person.ID, 10),
		FullName: p.Person.FullName,
		Goalie:   len(p.Stats.GoalieStats) > 0,
	}
	if p.Person.CurrentTeam != nil {
		name := p.Person.CurrentTeam.Name
		entry.CurrentTeamName = &name
	}
	if p.Stats.SkaterStats != nil {
		entry.Skater = &domain.SkaterStats{
			Assists: p.Stats.SkaterStats.Assists,
			Goals:   p.Stats.SkaterStats.Goals,
		}
	}
	return entry
}
