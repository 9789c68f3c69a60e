package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/services"
	"github.com/ajoneedienen/catalogue-app/utils"
)

type OptionController struct {
	DB      *gorm.DB
	Resolve *services.OwnershipResolver
}

func NewOptionController(db *gorm.DB) *OptionController {
	return &OptionController{DB: db, Resolve: services.NewOwnershipResolver(db)}
}

// CreateOption -> new priced option under an owned product
func (oc *OptionController) CreateOption(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("product_id"))

	restaurant, err := oc.Resolve.ForProduct(uint(productID))
	if !authorize(c, oc.DB, restaurant, err) {
		return
	}

	type reqBody struct {
		Name    string   `json:"name" binding:"required"`
		Section string   `json:"section"`
		Price   *float64 `json:"price" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Section == "" {
		body.Section = models.SectionNonAC
	}

	option := models.Option{
		ProductID: uint(productID),
		Name:      body.Name,
		Section:   body.Section,
		Price:     *body.Price,
	}
	if err := oc.DB.Create(&option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Option created", option)
}

// UpdateOption
func (oc *OptionController) UpdateOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("option_id"))

	restaurant, err := oc.Resolve.ForOption(uint(id))
	if !authorize(c, oc.DB, restaurant, err) {
		return
	}

	type reqBody struct {
		Name    string   `json:"name"`
		Section string   `json:"section"`
		Price   *float64 `json:"price"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var option models.Option
	if err := oc.DB.First(&option, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		option.Name = body.Name
	}
	if body.Section != "" {
		option.Section = body.Section
	}
	if body.Price != nil {
		option.Price = *body.Price
	}

	if err := oc.DB.Save(&option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Option updated", option)
}

// DeleteOption
func (oc *OptionController) DeleteOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("option_id"))

	restaurant, err := oc.Resolve.ForOption(uint(id))
	if !authorize(c, oc.DB, restaurant, err) {
		return
	}

	if err := oc.DB.Delete(&models.Option{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Option deleted", gin.H{"option_id": id})
}
