package utils

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// Overlaps reports whether the half-open ranges [startA, endA) and
// [startB, endB) intersect. Ranges that only touch at a boundary
// (endA == startB) do not overlap, and a zero-length range overlaps nothing.
// Comparisons are at full timestamp granularity; date-only values are parsed
// to midnight, which makes day granularity a special case.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// DateKey formats t as the canonical "yyyy-mm-dd" map key shared by the
// occupancy aggregator, the agenda and the export layer.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// DayFloor truncates t to midnight in its own location.
func DayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDateTime accepts "2006-01-02" or RFC3339, in that order. Date-only
// input lands on midnight UTC.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(dateKeyLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected yyyy-mm-dd or RFC3339)", value)
}

// PtrTime returns a pointer to t.
func PtrTime(t time.Time) *time.Time { return &t }
