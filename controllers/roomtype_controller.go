package controllers

import (
	"net/http"

	"pousada-backend/config"
	"pousada-backend/models"

	"github.com/gin-gonic/gin"
)

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	config.DB.Find(&roomTypes)
	c.JSON(http.StatusOK, roomTypes)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}
	if rt.TypeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Type name is required.",
		})
		return
	}

	if err := config.DB.Create(&rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func DeleteRoomType(c *gin.Context) {
	id := c.Param("id")

	// Soft delete; rooms keep their room_type_id and simply resolve to nothing.
	if err := config.DB.Delete(&models.RoomType{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Delete failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
