package controllers

import (
	"net/http"
	"strconv"
	"time"

	"pousada-backend/services"
	"pousada-backend/utils"

	"github.com/gin-gonic/gin"
)

type AgendaController struct {
	Agenda       *services.AgendaService
	Occupancy    *services.OccupancyService
	Availability *services.AvailabilityService
}

func NewAgendaController(agenda *services.AgendaService, occupancy *services.OccupancyService, availability *services.AvailabilityService) *AgendaController {
	return &AgendaController{Agenda: agenda, Occupancy: occupancy, Availability: availability}
}

func parseMonthYear(c *gin.Context) (time.Month, int, bool) {
	now := time.Now().UTC()

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "month must be 1-12")
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil || year < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid year")
		return 0, 0, false
	}
	return time.Month(month), year, true
}

// GET /api/agenda?month=&year=
// Full month view: 42-day grid, positioned bars and the occupancy map.
func (ac *AgendaController) GetMonthAgenda(c *gin.Context) {
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	view, err := ac.Agenda.MonthAgenda(month, year)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/agenda/occupancy?month=&year=
// Standalone occupancy map, also consumed by the printable monthly report.
func (ac *AgendaController) GetMonthlyOccupancy(c *gin.Context) {
	month, year, ok := parseMonthYear(c)
	if !ok {
		return
	}

	occupancy, err := ac.Occupancy.MonthlyOccupancy(month, year)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, occupancy)
}

// GET /api/agenda/available-rooms?check_in=&check_out=
func (ac *AgendaController) GetAvailableRooms(c *gin.Context) {
	checkIn, err := utils.ParseDateTime(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDateTime(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rooms, err := ac.Availability.AvailableRooms(checkIn, checkOut)
	if err != nil {
		if services.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/agenda/check?room_id=&check_in=&check_out=&exclude=
// Availability predicate for a single room; false is a normal outcome.
func (ac *AgendaController) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("room_id"), 10, 32)
	if err != nil || roomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room_id")
		return
	}
	checkIn, err := utils.ParseDateTime(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDateTime(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var excludeID uint
	if raw := c.Query("exclude"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid exclude id")
			return
		}
		excludeID = uint(parsed)
	}

	available, err := ac.Availability.IsAvailable(uint(roomID), checkIn, checkOut, excludeID)
	if err != nil {
		if services.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
