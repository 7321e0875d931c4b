package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PilgrimageStatusActive    = "active"
	PilgrimageStatusCompleted = "completed"
	PilgrimageStatusCancelled = "cancelled"
)

// Pilgrimage is a named group booking party. Its stay may span several rooms
// and, via occurrences, several disjoint date ranges.
type Pilgrimage struct {
	gorm.Model

	Name         string `json:"name" gorm:"size:255"`
	ContactName  string `json:"contactName" gorm:"size:255"`
	ContactPhone string `json:"contactPhone" gorm:"size:50"`
	Headcount    int    `json:"headcount"`
	BusLabel     string `json:"busLabel" gorm:"size:100"`
	Status       string `json:"status" gorm:"size:32;default:active"`
	Notes        string `json:"notes" gorm:"type:text"`

	// Legacy single-range fields. Older records carry only these; newer ones
	// carry Occurrences, whose first entry must equal the legacy dates.
	CheckIn  *time.Time `json:"checkIn,omitempty" gorm:"column:check_in"`
	CheckOut *time.Time `json:"checkOut,omitempty" gorm:"column:check_out"`

	Occurrences []PilgrimageOccurrence `gorm:"foreignKey:PilgrimageID" json:"occurrences"`
}

// PilgrimageOccurrence is one concrete half-open date range of a pilgrimage.
type PilgrimageOccurrence struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PilgrimageID uint      `gorm:"index;column:pilgrimage_id" json:"pilgrimageId"`
	StartDate    time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate      time.Time `gorm:"column:end_date" json:"endDate"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Normalize folds the legacy single-range fields into the occurrences list so
// callers only ever read Occurrences. Records migrated from the old schema
// have the legacy range as their first occurrence; if both representations
// are present and already consistent this is a no-op.
func (p *Pilgrimage) Normalize() {
	if p.CheckIn == nil || p.CheckOut == nil {
		return
	}
	if len(p.Occurrences) > 0 {
		first := p.Occurrences[0]
		if first.StartDate.Equal(*p.CheckIn) && first.EndDate.Equal(*p.CheckOut) {
			return
		}
	}
	legacy := PilgrimageOccurrence{
		PilgrimageID: p.ID,
		StartDate:    *p.CheckIn,
		EndDate:      *p.CheckOut,
	}
	p.Occurrences = append([]PilgrimageOccurrence{legacy}, p.Occurrences...)
}

// CurrentOccurrence picks the occurrence relevant at asOf: the one whose
// half-open range contains asOf, else the earliest future one, else nil.
func (p *Pilgrimage) CurrentOccurrence(asOf time.Time) *PilgrimageOccurrence {
	var nextFuture *PilgrimageOccurrence
	for i := range p.Occurrences {
		occ := &p.Occurrences[i]
		if !asOf.Before(occ.StartDate) && asOf.Before(occ.EndDate) {
			return occ
		}
		if occ.StartDate.After(asOf) {
			if nextFuture == nil || occ.StartDate.Before(nextFuture.StartDate) {
				nextFuture = occ
			}
		}
	}
	return nextFuture
}
