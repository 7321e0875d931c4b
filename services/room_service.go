package services

import (
	"fmt"

	"pousada-backend/config"
	"pousada-backend/models"
)

type RoomService struct{}

func (s RoomService) Create(room *models.Room) error {
	return config.DB.Create(room).Error
}

func (s RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := config.DB.Preload("RoomType").First(&room, id).Error
	return room, err
}

func (s RoomService) Update(id string, updates map[string]interface{}) error {
	// Protect identity and bookkeeping columns from blanket updates.
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	return config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error
}

// Deactivate soft-disables a room instead of deleting it: rooms referenced by
// reservations must stay resolvable for history and the agenda.
func (s RoomService) Deactivate(id string) error {
	res := config.DB.Model(&models.Room{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate room %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFoundError{Resource: "room"}
	}
	return nil
}
