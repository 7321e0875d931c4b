package services

import (
	"errors"
	"fmt"
	"time"

	"pousada-backend/models"

	"gorm.io/gorm"
)

// PilgrimageService is plain CRUD over pilgrimages plus the legacy-range
// normalization, so every record handed out already has its occurrences list
// resolved.
type PilgrimageService struct {
	DB *gorm.DB
}

func NewPilgrimageService(db *gorm.DB) *PilgrimageService {
	return &PilgrimageService{DB: db}
}

func (s *PilgrimageService) Create(p *models.Pilgrimage) error {
	if p.Status == "" {
		p.Status = models.PilgrimageStatusActive
	}
	for _, occ := range p.Occurrences {
		if !occ.EndDate.After(occ.StartDate) {
			return ErrInvalidRange
		}
	}
	if err := s.DB.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create pilgrimage: %w", err)
	}
	return nil
}

func (s *PilgrimageService) GetAll() ([]models.Pilgrimage, error) {
	var list []models.Pilgrimage
	if err := s.DB.Preload("Occurrences").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list pilgrimages: %w", err)
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

func (s *PilgrimageService) GetByID(id uint) (*models.Pilgrimage, error) {
	var p models.Pilgrimage
	if err := s.DB.Preload("Occurrences").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "pilgrimage", ID: id}
		}
		return nil, fmt.Errorf("failed to load pilgrimage %d: %w", id, err)
	}
	p.Normalize()
	return &p, nil
}

func (s *PilgrimageService) Update(id uint, updates map[string]interface{}) error {
	// Protect identity and bookkeeping columns from blanket updates.
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	res := s.DB.Model(&models.Pilgrimage{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update pilgrimage %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFoundError{Resource: "pilgrimage", ID: id}
	}
	return nil
}

// SetStatus moves a pilgrimage between active/completed/cancelled. Individual
// reservations under it keep their own lifecycle; cancelling the party does
// not cascade automatically.
func (s *PilgrimageService) SetStatus(id uint, status string) error {
	switch status {
	case models.PilgrimageStatusActive, models.PilgrimageStatusCompleted, models.PilgrimageStatusCancelled:
	default:
		return ValidationError{Msg: fmt.Sprintf("unknown pilgrimage status %q", status)}
	}
	return s.Update(id, map[string]interface{}{"status": status})
}

// CurrentOccurrence resolves the pilgrimage's occurrence relevant at asOf.
// asOf is explicit so callers (and tests) never depend on the wall clock.
func (s *PilgrimageService) CurrentOccurrence(id uint, asOf time.Time) (*models.PilgrimageOccurrence, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return p.CurrentOccurrence(asOf), nil
}
