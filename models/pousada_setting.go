package models

import "time"

// PousadaSetting is the single row of front-desk configuration: identity shown
// on the printable report plus the default check-in/check-out times offered
// when creating a reservation.
type PousadaSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Email        string    `gorm:"size:150" json:"email"`
	CheckInTime  string    `gorm:"size:5" json:"checkInTime"`  // "14:00"
	CheckOutTime string    `gorm:"size:5" json:"checkOutTime"` // "11:00"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
