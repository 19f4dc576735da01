package main

import (
	"testing"
	"time"

	"nhl-stats-crawler/internal/config"
	"nhl-stats-crawler/internal/providers/fixture"
	"nhl-stats-crawler/internal/providers/nhl"
	"nhl-stats-crawler/internal/storage"
	"nhl-stats-crawler/internal/timeutil"
)

// Smoke test to ensure main honors SKIP_CRAWLER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_CRAWLER_RUN", "1")
	main()
}

func TestRootCmdDefaultsToToday(t *testing.T) {
	cmd := newRootCmd()

	today := timeutil.FormatDate(time.Now().UTC())
	if got, err := cmd.Flags().GetString("start-date"); err != nil || got != today {
		t.Fatalf("expected start-date default %s, got %s (%v)", today, got, err)
	}
	if got, err := cmd.Flags().GetString("end-date"); err != nil || got != today {
		t.Fatalf("expected end-date default %s, got %s (%v)", today, got, err)
	}
}

func TestBuildProviderSelection(t *testing.T) {
	cfg := config.New()
	cfg.Provider = "fixture"
	if _, ok := buildProvider(cfg, nil, nil).(*fixture.Provider); !ok {
		t.Fatal("expected fixture provider")
	}

	cfg.Provider = "nhl"
	if _, ok := buildProvider(cfg, nil, nil).(*nhl.Client); !ok {
		t.Fatal("expected nhl client")
	}
}

func TestBuildStoreSelection(t *testing.T) {
	cfg := config.New()
	cfg.Store = "fs"
	cfg.FSPath = t.TempDir()
	store, err := buildStore(cfg)
	if err != nil {
		t.Fatalf("expected fs store, got %v", err)
	}
	if _, ok := store.(*storage.FSStore); !ok {
		t.Fatalf("expected FSStore, got %T", store)
	}
}

func TestParseRange(t *testing.T) {
	dates, err := parseRange("2021-12-10", "2021-12-15")
	if err != nil {
		t.Fatalf("expected valid range, got %v", err)
	}
	if dates.StartDate() != "2021-12-10" || dates.EndDate() != "2021-12-15" {
		t.Fatalf("unexpected range %s", dates)
	}

	if _, err := parseRange("12/10/2021", "2021-12-15"); err == nil {
		t.Fatal("expected error for malformed start date")
	}
	if _, err := parseRange("2021-12-15", "2021-12-10"); err == nil {
		t.Fatal("expected error for inverted range")
	}
}
