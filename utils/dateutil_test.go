package utils

import (
	"testing"
	"time"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{
			name:   "disjoint ranges",
			startA: d(2025, 12, 1), endA: d(2025, 12, 3),
			startB: d(2025, 12, 5), endB: d(2025, 12, 8),
			want: false,
		},
		{
			name:   "touching at boundary does not overlap",
			startA: d(2025, 12, 1), endA: d(2025, 12, 3),
			startB: d(2025, 12, 3), endB: d(2025, 12, 5),
			want: false,
		},
		{
			name:   "partial overlap",
			startA: d(2025, 12, 1), endA: d(2025, 12, 3),
			startB: d(2025, 12, 2), endB: d(2025, 12, 4),
			want: true,
		},
		{
			name:   "contained range",
			startA: d(2025, 12, 1), endA: d(2025, 12, 10),
			startB: d(2025, 12, 3), endB: d(2025, 12, 5),
			want: true,
		},
		{
			name:   "zero-length range overlaps nothing",
			startA: d(2025, 12, 2), endA: d(2025, 12, 2),
			startB: d(2025, 12, 1), endB: d(2025, 12, 5),
			want: false,
		},
		{
			name: "same-day with time of day",
			startA: time.Date(2025, 12, 1, 14, 0, 0, 0, time.UTC),
			endA:   time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC),
			startB: time.Date(2025, 12, 1, 17, 0, 0, 0, time.UTC),
			endB:   time.Date(2025, 12, 1, 20, 0, 0, 0, time.UTC),
			want:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.startA, tc.endA, tc.startB, tc.endB)
			if got != tc.want {
				t.Errorf("Overlaps() = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if sym := Overlaps(tc.startB, tc.endB, tc.startA, tc.endA); sym != got {
				t.Errorf("Overlaps not symmetric: %v vs %v", got, sym)
			}
		})
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey(d(2025, 12, 5)); got != "2025-12-05" {
		t.Errorf("DateKey = %q, want 2025-12-05", got)
	}
	if got := DateKey(time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC)); got != "2025-01-02" {
		t.Errorf("DateKey = %q, want 2025-01-02", got)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2025-12-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d(2025, 12, 5)) {
		t.Errorf("got %v, want midnight 2025-12-05", got)
	}

	got, err = ParseDateTime("2025-12-05T14:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("got %v, want 14:30", got)
	}

	if _, err := ParseDateTime("05/12/2025"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestDayFloor(t *testing.T) {
	in := time.Date(2025, 12, 5, 16, 45, 12, 0, time.UTC)
	if got := DayFloor(in); !got.Equal(d(2025, 12, 5)) {
		t.Errorf("DayFloor = %v", got)
	}
}
