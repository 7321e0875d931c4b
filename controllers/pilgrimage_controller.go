package controllers

import (
	"net/http"

	"pousada-backend/models"
	"pousada-backend/services"
	"pousada-backend/utils"

	"github.com/gin-gonic/gin"
)

type OccurrencePayload struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type CreatePilgrimageRequest struct {
	Name         string              `json:"name" binding:"required"`
	ContactName  string              `json:"contactName"`
	ContactPhone string              `json:"contactPhone"`
	Headcount    int                 `json:"headcount"`
	BusLabel     string              `json:"busLabel"`
	Notes        string              `json:"notes"`
	Occurrences  []OccurrencePayload `json:"occurrences" binding:"required,min=1"`
}

type SetPilgrimageStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PilgrimageController struct {
	Svc *services.PilgrimageService
}

func NewPilgrimageController(svc *services.PilgrimageService) *PilgrimageController {
	return &PilgrimageController{Svc: svc}
}

// GET /api/pilgrimages
func (pc *PilgrimageController) GetPilgrimages(c *gin.Context) {
	list, err := pc.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/pilgrimages/:id
func (pc *PilgrimageController) GetPilgrimage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := pc.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/pilgrimages/:id/current-occurrence?as_of=
func (pc *PilgrimageController) GetCurrentOccurrence(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	asOf, err := utils.ParseDateTime(c.Query("as_of"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	occ, err := pc.Svc.CurrentOccurrence(id, asOf)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if occ == nil {
		c.JSON(http.StatusOK, gin.H{"occurrence": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"occurrence": occ})
}

// POST /api/pilgrimages
func (pc *PilgrimageController) CreatePilgrimage(c *gin.Context) {
	var req CreatePilgrimageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	p := models.Pilgrimage{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Headcount:    req.Headcount,
		BusLabel:     req.BusLabel,
		Notes:        req.Notes,
	}
	for _, occ := range req.Occurrences {
		start, err := utils.ParseDateTime(occ.StartDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		end, err := utils.ParseDateTime(occ.EndDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		p.Occurrences = append(p.Occurrences, models.PilgrimageOccurrence{
			StartDate: start,
			EndDate:   end,
		})
	}

	if err := pc.Svc.Create(&p); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PATCH /api/pilgrimages/:id
func (pc *PilgrimageController) UpdatePilgrimage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := pc.Svc.Update(id, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": true})
}

// PATCH /api/pilgrimages/:id/status
func (pc *PilgrimageController) SetPilgrimageStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req SetPilgrimageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := pc.Svc.SetStatus(id, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": req.Status})
}
