package domain

import (
	"testing"
	"time"
)

func TestNewPeriod_Normalization(t *testing.T) {
	from := date("2024-02-01T15:30:00Z")
	to := date("2024-02-29T08:00:00Z")

	p, err := NewPeriod(&from, &to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.From.Equal(date("2024-02-01T00:00:00Z")) {
		t.Errorf("expected From at start of day, got %s", p.From)
	}

	endOfDay := date("2024-03-01T00:00:00Z").Add(-time.Nanosecond)
	if !p.To.Equal(endOfDay) {
		t.Errorf("expected To at end of day, got %s", p.To)
	}
}

func TestNewPeriod_InvertedBounds(t *testing.T) {
	from := date("2024-03-10T00:00:00Z")
	to := date("2024-03-01T00:00:00Z")

	if _, err := NewPeriod(&from, &to); err != ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestPeriod_BoundaryInclusivity(t *testing.T) {
	to := date("2024-02-29T00:00:00Z")
	p, _ := NewPeriod(nil, &to)

	atBoundary := date("2024-02-29T23:59:59Z").Add(999 * time.Millisecond)
	if !p.Contains(atBoundary) {
		t.Error("entry at 23:59:59.999 on the To date must be included")
	}

	oneMsLater := atBoundary.Add(time.Millisecond)
	if p.Contains(oneMsLater) {
		t.Error("entry one millisecond past the To boundary must be excluded")
	}
}

func TestPeriod_Filter(t *testing.T) {
	from := date("2024-02-01T00:00:00Z")
	to := date("2024-02-29T00:00:00Z")
	p, _ := NewPeriod(&from, &to)

	entries := []LedgerEntry{
		{ID: "before", Date: date("2024-01-31T23:59:59Z")},
		{ID: "inside", Date: date("2024-02-29T23:00:00Z")},
		{ID: "after", Date: date("2024-03-01T00:00:00Z")},
	}

	kept := p.Filter(entries)

	if len(kept) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(kept))
	}
	if kept[0].ID != "inside" {
		t.Errorf("expected %q, got %q", "inside", kept[0].ID)
	}
}

func TestPeriod_OpenBounds(t *testing.T) {
	entries := []LedgerEntry{
		{ID: "a", Date: date("2000-01-01T00:00:00Z")},
		{ID: "b", Date: date("2030-01-01T00:00:00Z")},
	}

	var p Period
	if !p.IsZero() {
		t.Error("zero period should report IsZero")
	}
	if got := p.Filter(entries); len(got) != 2 {
		t.Errorf("unbounded period must keep everything, got %d", len(got))
	}

	from := date("2024-01-01T00:00:00Z")
	fromOnly, _ := NewPeriod(&from, nil)
	if got := fromOnly.Filter(entries); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("from-only period kept wrong entries: %+v", got)
	}
}
