package models

import (
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeLegacyRange(t *testing.T) {
	in := day(2025, 12, 1)
	out := day(2025, 12, 5)

	t.Run("legacy-only record gains an occurrence", func(t *testing.T) {
		p := Pilgrimage{CheckIn: &in, CheckOut: &out}
		p.Normalize()
		if len(p.Occurrences) != 1 {
			t.Fatalf("got %d occurrences, want 1", len(p.Occurrences))
		}
		if !p.Occurrences[0].StartDate.Equal(in) || !p.Occurrences[0].EndDate.Equal(out) {
			t.Errorf("occurrence %v-%v does not match legacy range", p.Occurrences[0].StartDate, p.Occurrences[0].EndDate)
		}
	})

	t.Run("consistent record is untouched", func(t *testing.T) {
		p := Pilgrimage{
			CheckIn:  &in,
			CheckOut: &out,
			Occurrences: []PilgrimageOccurrence{
				{StartDate: in, EndDate: out},
				{StartDate: day(2026, 1, 10), EndDate: day(2026, 1, 12)},
			},
		}
		p.Normalize()
		if len(p.Occurrences) != 2 {
			t.Errorf("got %d occurrences, want 2", len(p.Occurrences))
		}
	})

	t.Run("legacy range is prepended as first occurrence", func(t *testing.T) {
		p := Pilgrimage{
			CheckIn:  &in,
			CheckOut: &out,
			Occurrences: []PilgrimageOccurrence{
				{StartDate: day(2026, 1, 10), EndDate: day(2026, 1, 12)},
			},
		}
		p.Normalize()
		if len(p.Occurrences) != 2 {
			t.Fatalf("got %d occurrences, want 2", len(p.Occurrences))
		}
		if !p.Occurrences[0].StartDate.Equal(in) {
			t.Errorf("first occurrence must equal legacy fields, got %v", p.Occurrences[0].StartDate)
		}
	})

	t.Run("no legacy fields is a no-op", func(t *testing.T) {
		p := Pilgrimage{}
		p.Normalize()
		if len(p.Occurrences) != 0 {
			t.Errorf("got %d occurrences, want 0", len(p.Occurrences))
		}
	})
}

func TestCurrentOccurrence(t *testing.T) {
	p := Pilgrimage{
		Occurrences: []PilgrimageOccurrence{
			{ID: 1, StartDate: day(2025, 12, 1), EndDate: day(2025, 12, 5)},
			{ID: 2, StartDate: day(2026, 2, 10), EndDate: day(2026, 2, 14)},
			{ID: 3, StartDate: day(2026, 1, 10), EndDate: day(2026, 1, 14)},
		},
	}

	t.Run("asOf inside a range picks it", func(t *testing.T) {
		occ := p.CurrentOccurrence(day(2025, 12, 3))
		if occ == nil || occ.ID != 1 {
			t.Fatalf("got %+v, want occurrence 1", occ)
		}
	})

	t.Run("end date is exclusive", func(t *testing.T) {
		occ := p.CurrentOccurrence(day(2025, 12, 5))
		if occ == nil || occ.ID != 3 {
			t.Fatalf("got %+v, want earliest future occurrence 3", occ)
		}
	})

	t.Run("between ranges picks earliest future", func(t *testing.T) {
		occ := p.CurrentOccurrence(day(2026, 1, 20))
		if occ == nil || occ.ID != 2 {
			t.Fatalf("got %+v, want occurrence 2", occ)
		}
	})

	t.Run("after all ranges yields nil", func(t *testing.T) {
		if occ := p.CurrentOccurrence(day(2026, 3, 1)); occ != nil {
			t.Fatalf("got %+v, want nil", occ)
		}
	})
}
