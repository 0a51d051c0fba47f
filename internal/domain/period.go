package domain

import "time"

// Period is an immutable date window. Either bound may be nil (unbounded).
// Bounds are inclusive: From is normalized to the start of its day and To
// to the end of its day, so an entry dated exactly on a boundary is kept.
type Period struct {
	From *time.Time
	To   *time.Time
}

// NewPeriod builds a Period with day-boundary normalization applied.
func NewPeriod(from, to *time.Time) (Period, error) {
	p := Period{}

	if from != nil {
		f := startOfDay(*from)
		p.From = &f
	}

	if to != nil {
		t := endOfDay(*to)
		p.To = &t
	}

	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		return Period{}, ErrInvalidPeriod
	}

	return p, nil
}

// IsZero reports whether the period is unbounded on both sides.
func (p Period) IsZero() bool {
	return p.From == nil && p.To == nil
}

// Contains reports whether t falls inside the window, boundaries included.
func (p Period) Contains(t time.Time) bool {
	if p.From != nil && t.Before(*p.From) {
		return false
	}

	if p.To != nil && t.After(*p.To) {
		return false
	}

	return true
}

// Filter keeps the entries dated inside the window. The filter runs before
// balance accumulation; the opening balance of a filtered statement is still
// the party's all-time opening balance, not a balance brought forward.
func (p Period) Filter(entries []LedgerEntry) []LedgerEntry {
	if p.IsZero() {
		return entries
	}

	kept := make([]LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if p.Contains(e.Date) {
			kept = append(kept, e)
		}
	}

	return kept
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
