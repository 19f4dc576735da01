// Package extract flattens box-score documents into per-player stat records.
// It is pure: no I/O, no logging, and it never fails. Missing or malformed
// fields degrade to zero values so a partial row is kept over no row at all.
package extract

import (
	"sort"
	"strings"
	"unicode"

	"nhl-stats-crawler/internal/domain"
)

// Players flattens one team side into records labeled with the given side.
// Goaltenders (entries without a skater-stats block, or carrying a
// goalie-stats block) are skipped entirely. Output is ordered by the
// provider's player key so repeated runs serialize identically.
func Players(side domain.TeamSide, label domain.Side) []domain.PlayerRecord {
	keys := make([]string, 0, len(side.Players))
	for k := range side.Players {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]domain.PlayerRecord, 0, len(keys))
	for _, k := range keys {
		entry := side.Players[k]
		if entry.Goalie || entry.Skater == nil {
			continue
		}
		records = append(records, domain.PlayerRecord{
			PlayerID:        playerID(k, entry),
			CurrentTeamName: orEmpty(entry.CurrentTeamName),
			FullName:        orEmpty(entry.FullName),
			Assists:         orZero(entry.Skater.Assists),
			Goals:           orZero(entry.Skater.Goals),
			Side:            label,
		})
	}
	return records
}

// Boxscore flattens a full box score, home side first, then away.
func Boxscore(box domain.Boxscore) []domain.PlayerRecord {
	records := Players(box.Home, domain.SideHome)
	return append(records, Players(box.Away, domain.SideAway)...)
}

// playerID derives the output id from the provider's player key, stripping
// any non-numeric prefix (keys look like "ID8478402"). When the key carries
// no digits at all the entry's person id is used instead.
func playerID(key string, entry domain.PlayerEntry) string {
	id := strings.TrimLeftFunc(key, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if id == "" {
		return entry.PersonID
	}
	return id
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func orZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
