package domain

// Side labels which bench a player record came from.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
	// SideError marks the sentinel row written when a crawl observes no games.
	SideError Side = "error"
)

// GameRef identifies a single game, sufficient to request its box score.
type GameRef struct {
	GameID string
}

// ScheduleDay holds one calendar date's scheduled games. Date is YYYY-MM-DD.
type ScheduleDay struct {
	Date  string
	Games []GameRef
}

// SkaterStats carries the offensive stats captured per skater. Fields are
// pointers because the upstream feed omits or nulls them for some players.
type SkaterStats struct {
	Assists *int
	Goals   *int
}

// PlayerEntry is one roster entry within a team side of a box score.
// FullName and CurrentTeamName are absent for some historical players.
// A nil Skater block or a present goalie block marks a goaltender.
type PlayerEntry struct {
	PersonID        string
	FullName        *string
	CurrentTeamName *string
	Skater          *SkaterStats
	Goalie          bool
}

// TeamSide maps provider player keys (e.g. "ID8478402") to entries.
type TeamSide struct {
	Players map[string]PlayerEntry
}

// Boxscore is the normalized per-game document.
type Boxscore struct {
	Home TeamSide
	Away TeamSide
}

// PlayerCount returns the total roster entries across both sides.
func (b Boxscore) PlayerCount() int {
	return len(b.Home.Players) + len(b.Away.Players)
}

// PlayerRecord is one flattened output row. Field order matches the CSV
// column order written to storage.
type PlayerRecord struct {
	PlayerID        string `csv:"playerID"`
	CurrentTeamName string `csv:"currentTeamName"`
	FullName        string `csv:"fullName"`
	Assists         int    `csv:"assists"`
	Goals           int    `csv:"goals"`
	Side            Side   `csv:"side"`
}
