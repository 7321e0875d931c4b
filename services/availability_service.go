package services

import (
	"fmt"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"

	"gorm.io/gorm"
)

// AvailabilityService answers "is this room free for this range". The answer
// is a point-in-time snapshot only: two callers can both see true and race
// each other to the write. The database unique/transactional layer is the
// system of record; this check exists for fast client-side rejection.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// HasConflict scans reservations for one overlapping the candidate range on
// roomID. Cancelled reservations never conflict. excludeID skips one
// reservation, used when re-validating an edit of that same reservation.
// Pure function over the snapshot; the DB-backed methods delegate here.
func HasConflict(reservations []models.Reservation, roomID uint, checkIn, checkOut time.Time, excludeID uint) bool {
	for _, r := range reservations {
		if r.RoomID != roomID || r.IsCancelled() {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if utils.Overlaps(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// FilterAvailableRooms returns every room with no conflicting reservation in
// the candidate range. An empty room list yields an empty result.
func FilterAvailableRooms(rooms []models.Room, reservations []models.Reservation, checkIn, checkOut time.Time) []models.Room {
	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if !HasConflict(reservations, room.ID, checkIn, checkOut, 0) {
			available = append(available, room)
		}
	}
	return available
}

// IsAvailable reports whether roomID is free for [checkIn, checkOut).
// A false result is a normal outcome, not an error.
func (s *AvailabilityService) IsAvailable(roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrInvalidRange
	}

	var existing []models.Reservation
	if err := s.DB.
		Where("room_id = ? AND status <> ?", roomID, models.ReservationStatusCancelled).
		Find(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to load reservations for room %d: %w", roomID, err)
	}

	return !HasConflict(existing, roomID, checkIn, checkOut, excludeID), nil
}

// AvailableRooms returns the active rooms free for [checkIn, checkOut),
// used to populate selection UIs.
func (s *AvailabilityService) AvailableRooms(checkIn, checkOut time.Time) ([]models.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}

	var rooms []models.Room
	if err := s.DB.Where("active = ?", true).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var reservations []models.Reservation
	if err := s.DB.
		Where("status <> ? AND check_in < ? AND check_out > ?",
			models.ReservationStatusCancelled, checkOut, checkIn).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return FilterAvailableRooms(rooms, reservations, checkIn, checkOut), nil
}
