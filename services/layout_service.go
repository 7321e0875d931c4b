package services

import (
	"sort"
	"time"

	"pousada-backend/utils"
)

// PositionedBar is one week-segment of an event on the agenda grid. A
// multi-week event yields one bar per week it touches; geometry is complete
// so the renderer never re-derives it.
type PositionedBar struct {
	Event    Event `json:"event"`
	Week     int   `json:"week"`
	StartCol int   `json:"startCol"` // 1..7
	EndCol   int   `json:"endCol"`   // exclusive, 2..8
	Lane     int   `json:"lane"`     // 0-based vertical slot
}

// MonthGrid returns the 42 days (6 weeks x 7 columns, Sunday-first) visible
// for month/year: the whole target month plus leading/trailing days from the
// adjacent months. Days are UTC midnights.
func MonthGrid(month time.Month, year int) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, 42)
	for i := range days {
		days[i] = gridStart.AddDate(0, 0, i)
	}
	return days
}

// LayoutWeek positions every event active during weekDays onto columns and
// lanes. Bars are clipped at the week edges: an event that started earlier
// resumes at column 1, one that continues past Saturday is cut at endCol 8.
// Lane assignment is the greedy interval coloring: events in start order take
// the first lane whose latest occupied column does not reach their startCol.
// Lanes reset every week, and events landing past cfg.MaxVisibleLanes are
// omitted (the renderer indicates overflow on its own).
func LayoutWeek(events []Event, weekDays []time.Time, week int, cfg AgendaConfig) []PositionedBar {
	if len(weekDays) != 7 {
		return nil
	}
	weekStart := weekDays[0]
	weekEnd := weekDays[6].AddDate(0, 0, 1)

	active := make([]Event, 0, len(events))
	for _, ev := range events {
		if utils.Overlaps(ev.Start, ev.End, weekStart, weekEnd) {
			active = append(active, ev)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].Start.Equal(active[j].Start) {
			return active[i].Start.Before(active[j].Start)
		}
		return active[i].sortKey() < active[j].sortKey()
	})

	bars := make([]PositionedBar, 0, len(active))
	var laneEnds []int // latest endCol occupied per lane this week

	for _, ev := range active {
		startCol := 1
		if !ev.Start.Before(weekStart) {
			startCol = daysBetween(weekStart, utils.DayFloor(ev.Start)) + 1
		}

		endCol := 8
		if ev.End.Before(weekEnd) {
			// The end instant is exclusive: an event ending exactly at
			// midnight does not occupy that day.
			lastDay := utils.DayFloor(ev.End)
			if ev.End.Equal(lastDay) {
				lastDay = lastDay.AddDate(0, 0, -1)
			}
			endCol = daysBetween(weekStart, lastDay) + 2
			if endCol > 8 {
				endCol = 8
			}
		}

		lane := -1
		for i, end := range laneEnds {
			if end <= startCol {
				lane = i
				break
			}
		}
		if lane == -1 {
			if len(laneEnds) >= cfg.MaxVisibleLanes {
				continue
			}
			laneEnds = append(laneEnds, 0)
			lane = len(laneEnds) - 1
		}
		laneEnds[lane] = endCol

		bars = append(bars, PositionedBar{
			Event:    ev,
			Week:     week,
			StartCol: startCol,
			EndCol:   endCol,
			Lane:     lane,
		})
	}

	return bars
}

// LayoutMonth runs LayoutWeek over the six weeks of a MonthGrid.
func LayoutMonth(events []Event, grid []time.Time, cfg AgendaConfig) []PositionedBar {
	bars := make([]PositionedBar, 0, len(events))
	for week := 0; week*7+7 <= len(grid); week++ {
		bars = append(bars, LayoutWeek(events, grid[week*7:week*7+7], week, cfg)...)
	}
	return bars
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
