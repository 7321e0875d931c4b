package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses. A cancelled reservation stays in the table — history
// and audit must survive — and is excluded from availability and occupancy
// by status, never by deletion.
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// Reservation kinds, derived from which of GuestName / PilgrimageID is set.
const (
	ReservationKindIndividual = "individual"
	ReservationKindGroup      = "group"
)

type Reservation struct {
	gorm.Model

	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	// Half-open range: the check-out instant is exclusive. Date-only bookings
	// store midnight; same-day bookings need a real time-of-day component.
	CheckIn  time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out" json:"checkOut"`

	// Exactly one of GuestName / PilgrimageID characterizes the reservation.
	GuestName    string `gorm:"size:255" json:"guestName,omitempty"`
	PilgrimageID *uint  `gorm:"index;column:pilgrimage_id" json:"pilgrimageId,omitempty"`

	Status        string `gorm:"size:32;index;default:pending" json:"status"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`
	ReferenceCode string `gorm:"size:64;uniqueIndex" json:"referenceCode,omitempty"`

	Room       Room        `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Pilgrimage *Pilgrimage `gorm:"foreignKey:PilgrimageID;references:ID" json:"pilgrimage,omitempty"`
}

// Kind reports whether this is an individual or a group (pilgrimage) booking.
func (r Reservation) Kind() string {
	if r.PilgrimageID != nil {
		return ReservationKindGroup
	}
	return ReservationKindIndividual
}

// IsCancelled is the status test used by the availability checker and the
// occupancy aggregator.
func (r Reservation) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}

// reservationTransitions is the full lifecycle:
// pending -> confirmed -> checked_in -> checked_out, with cancellation
// allowed from everything except checked_out. Both checked_out and
// cancelled are terminal.
var reservationTransitions = map[string][]string{
	ReservationStatusPending:    {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed:  {ReservationStatusCheckedIn, ReservationStatusCancelled},
	ReservationStatusCheckedIn:  {ReservationStatusCheckedOut, ReservationStatusCancelled},
	ReservationStatusCheckedOut: {},
	ReservationStatusCancelled:  {},
}

// CanTransition reports whether a status change from -> to is legal.
func CanTransition(from, to string) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
