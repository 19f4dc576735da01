package nhl

import "encoding/json"

type scheduleResponse struct {
	Dates []scheduleDateResponse `json:"dates"`
}

type scheduleDateResponse struct {
	Date  string                 `json:"date"`
	Games []scheduleGameResponse `json:"games"`
}

type scheduleGameResponse struct {
	GamePk int64 `json:"gamePk"`
}

type boxscoreResponse struct {
	Teams boxscoreTeamsResponse `json:"teams"`
}

type boxscoreTeamsResponse struct {
	Home teamSideResponse `json:"home"`
	Away teamSideResponse `json:"away"`
}

type teamSideResponse struct {
	Players map[string]playerResponse `json:"players"`
}

type playerResponse struct {
	Person personResponse `json:"person"`
	Stats  statsResponse  `json:"stats"`
}

type personResponse struct {
	ID          int64                `json:"id"`
	FullName    *string              `json:"fullName"`
	CurrentTeam *currentTeamResponse `json:"currentTeam"`
}

type currentTeamResponse struct {
	Name string `json:"name"`
}

type statsResponse struct {
	SkaterStats *skaterStatsResponse `json:"skaterStats"`
	// GoalieStats is kept raw; its presence alone classifies a goaltender.
	GoalieStats json.RawMessage `json:"goalieStats"`
}

type skaterStatsResponse struct {
	Assists *int `json:"assists"`
	Goals   *int `json:"goals"`
}
