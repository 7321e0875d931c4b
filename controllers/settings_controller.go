package controllers

import (
	"net/http"

	"pousada-backend/config"
	"pousada-backend/models"

	"github.com/gin-gonic/gin"
)

// GetPousadaSettings returns the single settings row, creating an empty one on
// first access.
func GetPousadaSettings(c *gin.Context) {
	var settings models.PousadaSetting
	if err := config.DB.FirstOrCreate(&settings, models.PousadaSetting{ID: 1}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load settings",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdatePousadaSettings(c *gin.Context) {
	var payload models.PousadaSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	payload.ID = 1
	if err := config.DB.Save(&payload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save settings",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, payload)
}
