package storage

import "fmt"

// Key identifies one stored game document. Identity is the full
// (Table, GameID, GameDate) triple; GameDate must already be YYYY-MM-DD.
type Key struct {
	Table    string
	GameID   string
	GameDate string
}

// NewKey builds a storage key for a game's record set.
func NewKey(table, gameID, gameDate string) Key {
	return Key{Table: table, GameID: gameID, GameDate: gameDate}
}

// Render returns the object path for this key:
// {table}/{gameDate}/{gameID}.csv
func (k Key) Render() string {
	return fmt.Sprintf("%s/%s/%s.csv", k.Table, k.GameDate, k.GameID)
}
