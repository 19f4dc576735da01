package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Fatal("expected parse error for non-canonical layout")
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestNewDateRange(t *testing.T) {
	start := time.Date(2021, 12, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 12, 15, 0, 0, 0, 0, time.UTC)

	r, err := NewDateRange(start, end)
	if err != nil {
		t.Fatalf("expected valid range, got %v", err)
	}
	if r.StartDate() != "2021-12-10" || r.EndDate() != "2021-12-15" {
		t.Fatalf("unexpected range %s", r)
	}

	if _, err := NewDateRange(end, start); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestDateRangeDates(t *testing.T) {
	r, err := NewDateRange(
		time.Date(2021, 12, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 12, 12, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("expected valid range, got %v", err)
	}

	days := r.Dates()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if FormatDate(days[0]) != "2021-12-10" || FormatDate(days[2]) != "2021-12-12" {
		t.Fatalf("unexpected days %v", days)
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	day := time.Date(2021, 12, 10, 0, 0, 0, 0, time.UTC)
	r, err := NewDateRange(day, day)
	if err != nil {
		t.Fatalf("expected single-day range to be valid, got %v", err)
	}
	if r.String() != "2021-12-10..2021-12-10" {
		t.Fatalf("unexpected string %s", r)
	}
}
