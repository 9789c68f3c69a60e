package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/utils"
)

type GeoController struct {
	DB *gorm.DB
}

func NewGeoController(db *gorm.DB) *GeoController {
	return &GeoController{DB: db}
}

// GetAllStates -> public, feeds the onboarding form
func (gc *GeoController) GetAllStates(c *gin.Context) {
	var states []models.State
	if err := gc.DB.Order("name").Find(&states).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All states", states)
}

// GetDistricts -> districts of one state
func (gc *GeoController) GetDistricts(c *gin.Context) {
	stateID, _ := strconv.Atoi(c.Param("state_id"))

	var districts []models.District
	if err := gc.DB.Where("state_id = ?", stateID).Order("name").Find(&districts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Districts", districts)
}

// CreateState -> superuser
func (gc *GeoController) CreateState(c *gin.Context) {
	type reqBody struct {
		Name string `json:"name" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	state := models.State{Name: body.Name}
	if err := gc.DB.Create(&state).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "State created", state)
}

// CreateDistrict -> superuser
func (gc *GeoController) CreateDistrict(c *gin.Context) {
	type reqBody struct {
		StateID uint   `json:"state_id" binding:"required"`
		Name    string `json:"name" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var state models.State
	if err := gc.DB.First(&state, body.StateID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	district := models.District{StateID: body.StateID, Name: body.Name}
	if err := gc.DB.Create(&district).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "District created", district)
}
