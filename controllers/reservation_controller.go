package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"pousada-backend/services"
	"pousada-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateReservationRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckIn      string `json:"checkIn" binding:"required"`
	CheckOut     string `json:"checkOut" binding:"required"`
	GuestName    string `json:"guestName"`
	PilgrimageID *uint  `json:"pilgrimageId"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error kinds onto HTTP statuses.
// Availability conflicts are handled separately because they are expected
// outcomes, not faults.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case services.IsInvalidTransition(err):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// GET /api/reservations?from=&to=
func (rc *ReservationController) GetReservations(c *gin.Context) {
	from, err := utils.ParseDateTime(c.DefaultQuery("from", "1970-01-01"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := utils.ParseDateTime(c.DefaultQuery("to", "2999-01-01"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	list, err := rc.Svc.ListWindow(from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reservations/:id
func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	reservation, err := rc.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDateTime(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDateTime(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := rc.Svc.Create(services.CreateReservationInput{
		RoomID:       req.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		GuestName:    req.GuestName,
		PilgrimageID: req.PilgrimageID,
		Notes:        req.Notes,
		Status:       req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrRoomUnavailable) {
			utils.JSONError(c, http.StatusConflict, "room unavailable for selected dates")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// PATCH /api/reservations/:id/status
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	reservation, err := rc.Svc.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// POST /api/reservations/:id/cancel
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	reservation, err := rc.Svc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}
