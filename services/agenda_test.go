package services

import (
	"strings"
	"testing"
	"time"

	"pousada-backend/models"

	"gorm.io/gorm"
)

func groupReservation(id, roomID, pilgrimageID uint, checkIn, checkOut time.Time) models.Reservation {
	r := reservation(id, roomID, checkIn, checkOut, models.ReservationStatusConfirmed)
	r.PilgrimageID = &pilgrimageID
	return r
}

func TestGroupEventsIndividualsOnly(t *testing.T) {
	rooms := tenRooms()
	reservations := []models.Reservation{
		reservation(1, 1, day(2025, 12, 1), day(2025, 12, 3), models.ReservationStatusConfirmed),
		reservation(2, 2, day(2025, 12, 2), day(2025, 12, 4), models.ReservationStatusPending),
		reservation(3, 3, day(2025, 12, 1), day(2025, 12, 2), models.ReservationStatusCancelled),
	}

	events := GroupEvents(reservations, rooms, nil, DefaultAgendaConfig())

	// One event per non-cancelled reservation, room count 1, never flagged.
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, ev := range events {
		if ev.RoomCount != 1 {
			t.Errorf("event %q room count = %d, want 1", ev.Title, ev.RoomCount)
		}
		if ev.HighCapacity {
			t.Errorf("individual event %q must not be high-capacity", ev.Title)
		}
		if len(ev.Reservations) != 1 {
			t.Errorf("event %q has %d reservations, want 1", ev.Title, len(ev.Reservations))
		}
	}
}

func TestGroupEventsPilgrimageBucket(t *testing.T) {
	rooms := tenRooms()
	pilgrimages := []models.Pilgrimage{
		{Model: gorm.Model{ID: 5}, Name: "Aparecida", Headcount: 45, BusLabel: "Ônibus 1"},
	}
	reservations := []models.Reservation{
		groupReservation(1, 1, 5, day(2025, 12, 1), day(2025, 12, 3)),
		groupReservation(2, 2, 5, day(2025, 12, 1), day(2025, 12, 3)),
		groupReservation(3, 3, 5, day(2025, 12, 1), day(2025, 12, 3)),
	}

	events := GroupEvents(reservations, rooms, pilgrimages, DefaultAgendaConfig())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.RoomCount != 3 {
		t.Errorf("room count = %d, want 3", ev.RoomCount)
	}
	if !ev.Start.Equal(day(2025, 12, 1)) || !ev.End.Equal(day(2025, 12, 3)) {
		t.Errorf("range %v-%v, want 01/12-03/12", ev.Start, ev.End)
	}
	if !strings.Contains(ev.Title, "Aparecida") || !strings.Contains(ev.Title, "3") {
		t.Errorf("title %q must carry name and room count", ev.Title)
	}
	if !strings.Contains(ev.Tooltip, "45") || !strings.Contains(ev.Tooltip, "Ônibus 1") {
		t.Errorf("tooltip %q must carry headcount and bus label", ev.Tooltip)
	}
	if ev.HighCapacity {
		t.Errorf("30%% of inventory must not be high-capacity")
	}
}

func TestGroupEventsRangeUnion(t *testing.T) {
	rooms := tenRooms()
	reservations := []models.Reservation{
		groupReservation(1, 1, 5, day(2025, 12, 3), day(2025, 12, 6)),
		groupReservation(2, 2, 5, day(2025, 12, 1), day(2025, 12, 4)),
	}

	events := GroupEvents(reservations, rooms, nil, DefaultAgendaConfig())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !events[0].Start.Equal(day(2025, 12, 1)) || !events[0].End.Equal(day(2025, 12, 6)) {
		t.Errorf("range %v-%v, want union 01/12-06/12", events[0].Start, events[0].End)
	}
}

func TestHighCapacityThresholdIsStrict(t *testing.T) {
	rooms := tenRooms()
	cfg := DefaultAgendaConfig()

	// 8 of 10 rooms = exactly 80%: not flagged.
	var eighty []models.Reservation
	for i := uint(1); i <= 8; i++ {
		eighty = append(eighty, groupReservation(i, i, 5, day(2025, 12, 1), day(2025, 12, 3)))
	}
	events := GroupEvents(eighty, rooms, nil, cfg)
	if len(events) != 1 || events[0].HighCapacity {
		t.Errorf("exactly 80%% must not be flagged high-capacity")
	}

	// 9 of 10 rooms = 90% > 80: flagged.
	nine := append(eighty, groupReservation(9, 9, 5, day(2025, 12, 1), day(2025, 12, 3)))
	events = GroupEvents(nine, rooms, nil, cfg)
	if len(events) != 1 || !events[0].HighCapacity {
		t.Errorf("90%% must be flagged high-capacity")
	}
}

func TestGroupEventsCancelledPilgrimageDisappears(t *testing.T) {
	rooms := tenRooms()
	reservations := []models.Reservation{
		groupReservation(1, 1, 5, day(2025, 12, 1), day(2025, 12, 3)),
	}
	reservations[0].Status = models.ReservationStatusCancelled

	events := GroupEvents(reservations, rooms, nil, DefaultAgendaConfig())
	if len(events) != 0 {
		t.Fatalf("got %d events, want 0: fully cancelled pilgrimage must not appear", len(events))
	}
}

func TestGroupEventsUnknownRoomTitle(t *testing.T) {
	// Reservation on a room missing from the snapshot (deactivated): the
	// title falls back to the room id instead of a dangling "Quarto ".
	rooms := []models.Room{{Model: gorm.Model{ID: 1}, RoomNumber: "101"}}
	reservations := []models.Reservation{
		reservation(1, 7, day(2025, 12, 1), day(2025, 12, 3), models.ReservationStatusConfirmed),
	}

	events := GroupEvents(reservations, rooms, nil, DefaultAgendaConfig())
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !strings.Contains(events[0].Title, "#7") {
		t.Errorf("title %q must carry the room id fallback", events[0].Title)
	}
}

func TestGroupEventsDeterministicOrder(t *testing.T) {
	rooms := tenRooms()
	reservations := []models.Reservation{
		reservation(4, 4, day(2025, 12, 2), day(2025, 12, 3), models.ReservationStatusConfirmed),
		reservation(2, 2, day(2025, 12, 1), day(2025, 12, 3), models.ReservationStatusConfirmed),
		reservation(1, 1, day(2025, 12, 1), day(2025, 12, 4), models.ReservationStatusConfirmed),
	}

	events := GroupEvents(reservations, rooms, nil, DefaultAgendaConfig())
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Sorted by start, ties broken by lowest reservation id.
	if events[0].Reservations[0].ID != 1 || events[1].Reservations[0].ID != 2 || events[2].Reservations[0].ID != 4 {
		t.Errorf("order = %d,%d,%d — want 1,2,4",
			events[0].Reservations[0].ID, events[1].Reservations[0].ID, events[2].Reservations[0].ID)
	}
}
