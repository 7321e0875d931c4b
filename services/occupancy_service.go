package services

import (
	"fmt"
	"math"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"

	"gorm.io/gorm"
)

// OccupancyService computes the per-day occupied/total ratio shown on the
// agenda's occupancy bar and in the printable monthly report.
type OccupancyService struct {
	DB *gorm.DB
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{DB: db}
}

// OccupancyByDay returns, for every day of month/year, the rounded percent of
// rooms holding a non-cancelled reservation whose half-open range contains
// that day. The check-out day itself is not counted. Keys are "yyyy-mm-dd".
// Only rooms in the supplied inventory count on either side of the ratio, so
// a reservation on a room outside it (a deactivated room, say) is ignored and
// the percent stays within [0,100]. With no rooms every day is 0. Recomputed
// fully on every call.
func OccupancyByDay(month time.Month, year int, rooms []models.Room, reservations []models.Reservation) map[string]int {
	result := make(map[string]int)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	totalRooms := len(rooms)

	inventory := make(map[uint]bool, len(rooms))
	for _, room := range rooms {
		inventory[room.ID] = true
	}

	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		key := utils.DateKey(day)

		if totalRooms == 0 {
			result[key] = 0
			continue
		}

		occupied := make(map[uint]bool)
		dayEnd := day.AddDate(0, 0, 1)
		for _, r := range reservations {
			if r.IsCancelled() || !inventory[r.RoomID] || occupied[r.RoomID] {
				continue
			}
			if utils.Overlaps(r.CheckIn, r.CheckOut, day, dayEnd) {
				occupied[r.RoomID] = true
			}
		}

		result[key] = int(math.Round(100 * float64(len(occupied)) / float64(totalRooms)))
	}

	return result
}

// MonthlyOccupancy loads the month's snapshot and computes OccupancyByDay.
// The reservation window is widened by a month on each side so stays that
// cross the month boundary still count.
func (s *OccupancyService) MonthlyOccupancy(month time.Month, year int) (map[string]int, error) {
	var rooms []models.Room
	if err := s.DB.Where("active = ?", true).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	windowStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	windowEnd := windowStart.AddDate(0, 3, 0)

	var reservations []models.Reservation
	if err := s.DB.
		Where("status <> ? AND check_in < ? AND check_out > ?",
			models.ReservationStatusCancelled, windowEnd, windowStart).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return OccupancyByDay(month, year, rooms, reservations), nil
}
