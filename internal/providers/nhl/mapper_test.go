package nhl

import (
	"testing"
)

func TestMapScheduleFormatsGamePks(t *testing.T) {
	payload := scheduleResponse{
		Dates: []scheduleDateResponse{
			{Date: "2021-12-10", Games: []scheduleGameResponse{{GamePk: 2021020001}}},
			{Date: "2021-12-11", Games: nil},
		},
	}

	days := mapSchedule(payload)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Games[0].GameID != "2021020001" {
		t.Fatalf("unexpected game id %s", days[0].Games[0].GameID)
	}
	if len(days[1].Games) != 0 {
		t.Fatalf("expected empty games slice, got %d", len(days[1].Games))
	}
}

func TestMapPlayerClassifiesGoalies(t *testing.T) {
	p := playerResponse{
		Person: personResponse{ID: 1},
		Stats:  statsResponse{GoalieStats: []byte(`{"saves": 12}`)},
	}
	entry := mapPlayer(p)
	if !entry.Goalie {
		t.Fatal("expected goalie classification")
	}
	if entry.Skater != nil {
		t.Fatalf("expected no skater stats, got %+v", entry.Skater)
	}
}

func TestMapPlayerKeepsAbsentFieldsNil(t *testing.T) {
	entry := mapPlayer(playerResponse{Person: personResponse{ID: 42}})
	if entry.PersonID != "42" {
		t.Fatalf("unexpected person id %s", entry.PersonID)
	}
	if entry.FullName != nil || entry.CurrentTeamName != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", entry)
	}
	if entry.Goalie {
		t.Fatal("expected non-goalie without goalie stats")
	}
}
