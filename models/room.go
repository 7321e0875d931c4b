package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room statuses shown on the dashboard. Availability itself is computed from
// reservations, not from this label.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusReserved    = "Reserved"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

type Room struct {
	gorm.Model

	// Nullable so a room can be created before its type is picked.
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Floor    string `json:"floor" gorm:"type:varchar(10)"`
	Capacity int    `json:"capacity" gorm:"column:capacity"`
	Beds     int    `json:"beds" gorm:"column:beds"`
	Status   string `json:"status" gorm:"size:64;default:Available"`

	// Amenity flags as free-form JSON, e.g. {"airConditioning":true,"tv":false}.
	// The set of flags is frontend-driven and not validated here.
	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	Description string `json:"description" gorm:"type:text"`

	// Rooms referenced by reservations are never hard-deleted; deactivation
	// only hides them from selection UIs.
	Active bool `json:"active" gorm:"default:true"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}

// Label returns the display label used in event titles and selection lists.
func (r Room) Label() string {
	return "Quarto " + r.RoomNumber
}
