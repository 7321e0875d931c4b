package services

import (
	"testing"
	"time"

	"pousada-backend/models"

	"gorm.io/gorm"
)

func tenRooms() []models.Room {
	rooms := make([]models.Room, 10)
	for i := range rooms {
		rooms[i] = models.Room{Model: gorm.Model{ID: uint(i + 1)}}
	}
	return rooms
}

func TestOccupancyByDay(t *testing.T) {
	rooms := tenRooms()
	reservations := []models.Reservation{
		reservation(1, 1, day(2025, 12, 1), day(2025, 12, 5), models.ReservationStatusConfirmed),
		reservation(2, 2, day(2025, 12, 4), day(2025, 12, 6), models.ReservationStatusConfirmed),
		reservation(3, 3, day(2025, 12, 5), day(2025, 12, 7), models.ReservationStatusCheckedIn),
		reservation(4, 4, day(2025, 12, 5), day(2025, 12, 6), models.ReservationStatusCancelled),
	}

	result := OccupancyByDay(time.December, 2025, rooms, reservations)

	if len(result) != 31 {
		t.Fatalf("got %d days, want 31", len(result))
	}

	// Dec 5: rooms 2 and 3 occupied; room 1 checked out that day (half-open),
	// room 4 cancelled.
	if got := result["2025-12-05"]; got != 20 {
		t.Errorf("2025-12-05 = %d%%, want 20", got)
	}
	if got := result["2025-12-04"]; got != 20 {
		t.Errorf("2025-12-04 = %d%%, want 20 (rooms 1 and 2)", got)
	}
	if got := result["2025-12-10"]; got != 0 {
		t.Errorf("2025-12-10 = %d%%, want 0", got)
	}

	for key, pct := range result {
		if pct < 0 || pct > 100 {
			t.Errorf("%s = %d%% out of [0,100]", key, pct)
		}
	}
}

func TestOccupancyThirtyPercent(t *testing.T) {
	rooms := tenRooms()
	reservations := []models.Reservation{
		reservation(1, 1, day(2025, 12, 4), day(2025, 12, 6), models.ReservationStatusConfirmed),
		reservation(2, 2, day(2025, 12, 5), day(2025, 12, 8), models.ReservationStatusConfirmed),
		reservation(3, 3, day(2025, 12, 3), day(2025, 12, 9), models.ReservationStatusConfirmed),
	}

	result := OccupancyByDay(time.December, 2025, rooms, reservations)
	if got := result["2025-12-05"]; got != 30 {
		t.Errorf("2025-12-05 = %d%%, want 30", got)
	}
}

func TestOccupancyEmptyInventory(t *testing.T) {
	reservations := []models.Reservation{
		reservation(1, 1, day(2025, 12, 1), day(2025, 12, 5), models.ReservationStatusConfirmed),
	}

	result := OccupancyByDay(time.December, 2025, nil, reservations)
	for key, pct := range result {
		if pct != 0 {
			t.Errorf("%s = %d%%, want 0 with empty inventory", key, pct)
		}
	}
}

func TestOccupancyIgnoresRoomsOutsideInventory(t *testing.T) {
	// A reservation on a room that is not part of the inventory (deactivated,
	// deleted) must not count; the ratio stays within [0,100].
	rooms := []models.Room{{Model: gorm.Model{ID: 1}}}
	reservations := []models.Reservation{
		reservation(1, 1, day(2025, 12, 1), day(2025, 12, 5), models.ReservationStatusConfirmed),
		reservation(2, 2, day(2025, 12, 1), day(2025, 12, 5), models.ReservationStatusConfirmed),
	}

	result := OccupancyByDay(time.December, 2025, rooms, reservations)
	if got := result["2025-12-03"]; got != 100 {
		t.Errorf("2025-12-03 = %d%%, want 100", got)
	}
	for key, pct := range result {
		if pct < 0 || pct > 100 {
			t.Errorf("%s = %d%% out of [0,100]", key, pct)
		}
	}
}

func TestOccupancyDistinctRooms(t *testing.T) {
	// Two reservations on the same room the same day count once.
	rooms := tenRooms()
	reservations := []models.Reservation{
		reservation(1, 1, time.Date(2025, 12, 5, 8, 0, 0, 0, time.UTC), time.Date(2025, 12, 5, 12, 0, 0, 0, time.UTC), models.ReservationStatusCheckedOut),
		reservation(2, 1, time.Date(2025, 12, 5, 14, 0, 0, 0, time.UTC), time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC), models.ReservationStatusConfirmed),
	}

	result := OccupancyByDay(time.December, 2025, rooms, reservations)
	if got := result["2025-12-05"]; got != 10 {
		t.Errorf("2025-12-05 = %d%%, want 10 (one distinct room)", got)
	}
}
