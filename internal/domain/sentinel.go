package domain

import "fmt"

// Sentinel identifiers used when a crawl finds no games for its range.
// Keeping them stable makes the audit rows easy to locate in storage.
const (
	SentinelGameID   = "1"
	SentinelPlayerID = "1"
)

// NewSentinelRecord builds the single audit row written for an empty
// schedule. endDate is the crawled range's end in YYYY-MM-DD form.
func NewSentinelRecord(endDate string) PlayerRecord {
	return PlayerRecord{
		PlayerID:        SentinelPlayerID,
		CurrentTeamName: fmt.Sprintf("error getting players for %s", endDate),
		FullName:        "error",
		Assists:         0,
		Goals:           0,
		Side:            SideError,
	}
}
