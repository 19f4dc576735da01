package storage

import "testing"

func TestKeyRender(t *testing.T) {
	key := NewKey("player_game_stats", "2021020001", "2021-12-10")
	if got := key.Render(); got != "player_game_stats/2021-12-10/2021020001.csv" {
		t.Fatalf("unexpected key %s", got)
	}
}

func TestKeyRenderIsDeterministic(t *testing.T) {
	a := NewKey("t", "g", "2021-12-10")
	b := NewKey("t", "g", "2021-12-10")
	if a.Render() != b.Render() {
		t.Fatal("expected identical triples to render identically")
	}
}

func TestDistinctTriplesRenderDistinctKeys(t *testing.T) {
	keys := []Key{
		NewKey("player_game_stats", "2021020001", "2021-12-10"),
		NewKey("player_game_stats", "2021020002", "2021-12-10"),
		NewKey("player_game_stats", "2021020001", "2021-12-11"),
		NewKey("other_table", "2021020001", "2021-12-10"),
	}

	seen := make(map[string]Key, len(keys))
	for _, k := range keys {
		rendered := k.Render()
		if prev, ok := seen[rendered]; ok {
			t.Fatalf("keys %+v and %+v collide on %s", prev, k, rendered)
		}
		seen[rendered] = k
	}
}
