package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pousada-backend/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService owns reservation writes: availability-gated creation and
// the status state machine. Reads for the agenda go through AgendaService.
type ReservationService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService) *ReservationService {
	return &ReservationService{DB: db, Availability: availability}
}

// CreateReservationInput carries the validated booking request. Exactly one
// of GuestName / PilgrimageID must be set.
type CreateReservationInput struct {
	RoomID       uint
	CheckIn      time.Time
	CheckOut     time.Time
	GuestName    string
	PilgrimageID *uint
	Notes        string
	Status       string
}

// ErrRoomUnavailable signals a conflicting reservation on the requested
// range. It is an expected outcome the controller maps to 409, not a fault.
var ErrRoomUnavailable = errors.New("room unavailable for selected dates")

// Create validates the request, re-checks availability inside the write
// transaction and inserts the reservation. The in-transaction re-check
// narrows, but cannot close, the check-then-act window; the database is the
// final arbiter.
func (s *ReservationService) Create(input CreateReservationInput) (*models.Reservation, error) {
	if !input.CheckOut.After(input.CheckIn) {
		return nil, ErrInvalidRange
	}

	hasGuest := strings.TrimSpace(input.GuestName) != ""
	if hasGuest == (input.PilgrimageID != nil) {
		return nil, ValidationError{Msg: "exactly one of guestName or pilgrimageId must be set"}
	}

	status := input.Status
	if status == "" {
		status = models.ReservationStatusPending
	}
	if status != models.ReservationStatusPending && status != models.ReservationStatusConfirmed {
		return nil, ValidationError{Msg: fmt.Sprintf("cannot create reservation with status %q", status)}
	}

	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "room", ID: input.RoomID}
		}
		return nil, fmt.Errorf("db error checking room %d: %w", input.RoomID, err)
	}

	if input.PilgrimageID != nil {
		var p models.Pilgrimage
		if err := s.DB.First(&p, *input.PilgrimageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NotFoundError{Resource: "pilgrimage", ID: *input.PilgrimageID}
			}
			return nil, fmt.Errorf("db error checking pilgrimage %d: %w", *input.PilgrimageID, err)
		}
	}

	reservation := &models.Reservation{
		RoomID:        input.RoomID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		GuestName:     strings.TrimSpace(input.GuestName),
		PilgrimageID:  input.PilgrimageID,
		Notes:         input.Notes,
		Status:        status,
		ReferenceCode: uuid.NewString(),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing []models.Reservation
		if err := tx.
			Where("room_id = ? AND status <> ?", input.RoomID, models.ReservationStatusCancelled).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load reservations for room %d: %w", input.RoomID, err)
		}
		if HasConflict(existing, input.RoomID, input.CheckIn, input.CheckOut, 0) {
			return ErrRoomUnavailable
		}

		if err := tx.Create(reservation).Error; err != nil {
			var mysqlErr *mysqldrv.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
				return fmt.Errorf("reference code collision, retry the request: %w", err)
			}
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", input.RoomID).
			Update("status", models.RoomStatusReserved).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", input.RoomID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").Preload("Pilgrimage").First(reservation, reservation.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload reservation: %w", err)
	}
	return reservation, nil
}

// UpdateStatus applies one lifecycle transition. Entering cancelled or
// checked_out releases the room (status label back to Available); the
// cancelled reservation itself stays on record and simply stops counting
// for availability and occupancy.
func (s *ReservationService) UpdateStatus(id uint, newStatus string) (*models.Reservation, error) {
	var reservation models.Reservation

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "reservation", ID: id}
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}

		if !models.CanTransition(reservation.Status, newStatus) {
			return InvalidTransitionError{From: reservation.Status, To: newStatus}
		}

		if err := tx.Model(&reservation).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}
		reservation.Status = newStatus

		switch newStatus {
		case models.ReservationStatusCheckedIn:
			return setRoomStatus(tx, reservation.RoomID, models.RoomStatusOccupied)
		case models.ReservationStatusCheckedOut, models.ReservationStatusCancelled:
			return setRoomStatus(tx, reservation.RoomID, models.RoomStatusAvailable)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &reservation, nil
}

// Cancel is the status transition into cancelled.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	return s.UpdateStatus(id, models.ReservationStatusCancelled)
}

// GetByID loads one reservation with its room and pilgrimage.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.Preload("Room").Preload("Pilgrimage").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "reservation", ID: id}
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return &reservation, nil
}

// ListWindow returns every reservation overlapping [from, to), cancelled ones
// included so history screens can show them.
func (s *ReservationService) ListWindow(from, to time.Time) ([]models.Reservation, error) {
	if !to.After(from) {
		return nil, ErrInvalidRange
	}
	var list []models.Reservation
	if err := s.DB.
		Preload("Room").
		Preload("Pilgrimage").
		Where("check_in < ? AND check_out > ?", to, from).
		Order("check_in").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

func setRoomStatus(tx *gorm.DB, roomID uint, status string) error {
	if err := tx.Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update room %d status: %w", roomID, err)
	}
	return nil
}
