package services

import (
	"fmt"
	"sort"
	"time"

	"pousada-backend/models"

	"gorm.io/gorm"
)

// AgendaConfig holds the two display policies the agenda exposes as named
// configuration rather than magic numbers.
type AgendaConfig struct {
	// HighCapacityThreshold is the occupancy percent a single group event
	// must strictly exceed to be flagged. Default 80.
	HighCapacityThreshold float64
	// MaxVisibleLanes caps how many bars stack on one day of a week row.
	// Events assigned past the cap are omitted from the layout. Default 4.
	MaxVisibleLanes int
}

func DefaultAgendaConfig() AgendaConfig {
	return AgendaConfig{HighCapacityThreshold: 80, MaxVisibleLanes: 4}
}

// Event is the display-level aggregation the layout engine positions: one
// per individual reservation, one per pilgrimage covering all its rooms.
// Derived on every render pass, never persisted.
type Event struct {
	Title      string     `json:"title"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Status     string     `json:"status"`
	ColorClass string     `json:"colorClass"`
	Tooltip    string     `json:"tooltip,omitempty"`

	PilgrimageID     *uint   `json:"pilgrimageId,omitempty"`
	RoomCount        int     `json:"roomCount"`
	OccupancyPercent float64 `json:"occupancyPercent"`
	HighCapacity     bool    `json:"highCapacity"`

	Reservations []models.Reservation `json:"reservations"`
}

// sortKey is the deterministic tie-break: earliest start, then the smallest
// member reservation id.
func (e Event) sortKey() uint {
	min := e.Reservations[0].ID
	for _, r := range e.Reservations[1:] {
		if r.ID < min {
			min = r.ID
		}
	}
	return min
}

var statusColorClasses = map[string]string{
	models.ReservationStatusPending:    "event-pending",
	models.ReservationStatusConfirmed:  "event-confirmed",
	models.ReservationStatusCheckedIn:  "event-checked-in",
	models.ReservationStatusCheckedOut: "event-checked-out",
}

func colorClassFor(status string) string {
	if c, ok := statusColorClasses[status]; ok {
		return c
	}
	return "event-default"
}

// GroupEvents collapses the reservation snapshot into display events.
// Cancelled reservations are dropped first, so a pilgrimage whose bookings
// were all cancelled simply does not appear. Group buckets span the union of
// their members' ranges; the high-capacity flag fires when the bucket's share
// of the inventory strictly exceeds the configured threshold.
func GroupEvents(reservations []models.Reservation, rooms []models.Room, pilgrimages []models.Pilgrimage, cfg AgendaConfig) []Event {
	totalRooms := len(rooms)

	roomsByID := make(map[uint]models.Room, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = room
	}
	pilgrimagesByID := make(map[uint]models.Pilgrimage, len(pilgrimages))
	for _, p := range pilgrimages {
		pilgrimagesByID[p.ID] = p
	}

	groupBuckets := make(map[uint][]models.Reservation)
	var singles []models.Reservation
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		if r.PilgrimageID != nil {
			groupBuckets[*r.PilgrimageID] = append(groupBuckets[*r.PilgrimageID], r)
		} else {
			singles = append(singles, r)
		}
	}

	events := make([]Event, 0, len(groupBuckets)+len(singles))

	for pid, bucket := range groupBuckets {
		start := bucket[0].CheckIn
		end := bucket[0].CheckOut
		for _, r := range bucket[1:] {
			if r.CheckIn.Before(start) {
				start = r.CheckIn
			}
			if r.CheckOut.After(end) {
				end = r.CheckOut
			}
		}

		percent := 0.0
		if totalRooms > 0 {
			percent = 100 * float64(len(bucket)) / float64(totalRooms)
		}

		p, known := pilgrimagesByID[pid]
		name := p.Name
		if !known || name == "" {
			name = fmt.Sprintf("Caravana #%d", pid)
		}

		pidCopy := pid
		ev := Event{
			Title:            fmt.Sprintf("%s (%d quartos)", name, len(bucket)),
			Start:            start,
			End:              end,
			Status:           bucket[0].Status,
			PilgrimageID:     &pidCopy,
			RoomCount:        len(bucket),
			OccupancyPercent: percent,
			HighCapacity:     percent > cfg.HighCapacityThreshold,
			Reservations:     bucket,
		}
		ev.ColorClass = colorClassFor(ev.Status)
		ev.Tooltip = fmt.Sprintf("%s — %d pessoas, %s, %d quartos (%.0f%% da pousada)",
			name, p.Headcount, busLabelOrDefault(p.BusLabel), len(bucket), percent)
		events = append(events, ev)
	}

	for _, r := range singles {
		title := fmt.Sprintf("Quarto #%d", r.RoomID)
		if room, ok := roomsByID[r.RoomID]; ok {
			// Deactivated rooms are not in the snapshot; keep the id fallback.
			title = room.Label()
		}
		if r.GuestName != "" {
			title += " — " + r.GuestName
		} else if r.Notes != "" {
			title += " — " + r.Notes
		}
		events = append(events, Event{
			Title:        title,
			Start:        r.CheckIn,
			End:          r.CheckOut,
			Status:       r.Status,
			ColorClass:   colorClassFor(r.Status),
			RoomCount:    1,
			Reservations: []models.Reservation{r},
		})
	}

	// Stable order so the layout engine's lane assignment is reproducible.
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].sortKey() < events[j].sortKey()
	})

	return events
}

func busLabelOrDefault(label string) string {
	if label == "" {
		return "sem ônibus"
	}
	return label
}

// AgendaService assembles the month view consumed by the calendar renderer:
// grouped events laid out over the 6-week grid plus the daily occupancy map.
type AgendaService struct {
	DB     *gorm.DB
	Config AgendaConfig
}

func NewAgendaService(db *gorm.DB, cfg AgendaConfig) *AgendaService {
	return &AgendaService{DB: db, Config: cfg}
}

// MonthView is the render-agnostic agenda payload for one visible month.
type MonthView struct {
	Month     time.Month      `json:"month"`
	Year      int             `json:"year"`
	Days      []time.Time     `json:"days"`
	Bars      []PositionedBar `json:"bars"`
	Occupancy map[string]int  `json:"occupancy"`
}

// MonthAgenda recomputes the whole view from the current snapshot. The
// reservation window covers the 42-day grid plus slack for cross-grid spans.
func (s *AgendaService) MonthAgenda(month time.Month, year int) (*MonthView, error) {
	grid := MonthGrid(month, year)
	windowStart := grid[0].AddDate(0, -1, 0)
	windowEnd := grid[len(grid)-1].AddDate(0, 1, 0)

	var rooms []models.Room
	if err := s.DB.Where("active = ?", true).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var reservations []models.Reservation
	if err := s.DB.
		Where("check_in < ? AND check_out > ?", windowEnd, windowStart).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	var pilgrimages []models.Pilgrimage
	if err := s.DB.Preload("Occurrences").Find(&pilgrimages).Error; err != nil {
		return nil, fmt.Errorf("failed to load pilgrimages: %w", err)
	}
	for i := range pilgrimages {
		pilgrimages[i].Normalize()
	}

	events := GroupEvents(reservations, rooms, pilgrimages, s.Config)
	bars := LayoutMonth(events, grid, s.Config)

	occupancy := OccupancyByDay(month, year, rooms, reservations)

	return &MonthView{
		Month:     month,
		Year:      year,
		Days:      grid,
		Bars:      bars,
		Occupancy: occupancy,
	}, nil
}
