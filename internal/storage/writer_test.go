package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nhl-stats-crawler/internal/domain"
	"nhl-stats-crawler/internal/metrics"
)

type fakeStore struct {
	puts map[string][]byte
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{puts: make(map[string][]byte)}
}

func (f *fakeStore) Put(ctx context.Context, key string, data []byte) error {
	_ = ctx
	if f.err != nil {
		return f.err
	}
	f.puts[key] = data
	return nil
}

const csvHeader = "playerID,currentTeamName,fullName,assists,goals,side"

func TestStoreGameWritesCSVWithHeader(t *testing.T) {
	store := newFakeStore()
	writer := NewWriter(store, nil, nil)

	records := []domain.PlayerRecord{
		{PlayerID: "8478402", CurrentTeamName: "Edmonton Oilers", FullName: "Connor McDavid", Assists: 2, Goals: 1, Side: domain.SideHome},
		{PlayerID: "8477492", FullName: "Nathan MacKinnon", Assists: 0, Goals: 0, Side: domain.SideAway},
	}

	key := NewKey("player_game_stats", "2021020001", "2021-12-10")
	if err := writer.StoreGame(context.Background(), key, records); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	data, ok := store.puts["player_game_stats/2021-12-10/2021020001.csv"]
	if !ok {
		t.Fatalf("expected write under rendered key, got %v", store.puts)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), string(data))
	}
	if lines[0] != csvHeader {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "8478402,Edmonton Oilers,Connor McDavid,2,1,home" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if lines[2] != "8477492,,Nathan MacKinnon,0,0,away" {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestStoreGameEmptyRecordsWritesHeaderOnly(t *testing.T) {
	store := newFakeStore()
	writer := NewWriter(store, nil, nil)

	key := NewKey("player_game_stats", "1", "2021-12-15")
	if err := writer.StoreGame(context.Background(), key, nil); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	data := store.puts[key.Render()]
	if got := strings.TrimRight(string(data), "\n"); got != csvHeader {
		t.Fatalf("expected header-only document, got %q", got)
	}
}

func TestStoreGameWrapsPutFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("bucket unavailable")
	writer := NewWriter(store, nil, nil)

	err := writer.StoreGame(context.Background(), NewKey("t", "g", "2021-12-10"), nil)
	if err == nil {
		t.Fatal("expected error")
	}

	sErr, ok := AsStorageError(err)
	if !ok {
		t.Fatalf("expected StorageError, got %T", err)
	}
	if sErr.Key != "t/2021-12-10/g.csv" {
		t.Fatalf("unexpected key in error %+v", sErr)
	}
	if !errors.Is(err, store.err) {
		t.Fatal("expected underlying cause to be wrapped")
	}
}

func TestStoreGameRecordsMetrics(t *testing.T) {
	store := newFakeStore()
	rec := metrics.NewRecorder()
	writer := NewWriter(store, nil, rec)

	key := NewKey("t", "g", "2021-12-10")
	if err := writer.StoreGame(context.Background(), key, nil); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if got := rec.StorageWrites(); got != 1 {
		t.Fatalf("expected 1 write recorded, got %d", got)
	}
	if got := rec.BytesWritten(); got != int64(len(store.puts[key.Render()])) {
		t.Fatalf("expected recorded bytes to match payload, got %d", got)
	}

	store.err = errors.New("boom")
	_ = writer.StoreGame(context.Background(), key, nil)
	if got := rec.StorageErrors(); got != 1 {
		t.Fatalf("expected 1 write error recorded, got %d", got)
	}
}
