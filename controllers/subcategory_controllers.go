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

type SubcategoryController struct {
	DB      *gorm.DB
	Resolve *services.OwnershipResolver
}

func NewSubcategoryController(db *gorm.DB) *SubcategoryController {
	return &SubcategoryController{DB: db, Resolve: services.NewOwnershipResolver(db)}
}

// GetAllSubcategories -> own subcategories, or all for the superuser
func (sc *SubcategoryController) GetAllSubcategories(c *gin.Context) {
	var subcategories []models.Subcategory

	q := sc.DB.Order("subcategories.name")
	if !c.GetBool("is_superuser") {
		restaurant, err := ownRestaurant(c, sc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		q = q.Joins("JOIN categories ON categories.id = subcategories.category_id").
			Where("categories.restaurant_id = ?", restaurant.ID)
	}

	if err := q.Find(&subcategories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All subcategories", subcategories)
}

// CreateSubcategory -> created under a category the user owns
func (sc *SubcategoryController) CreateSubcategory(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("cat_id"))

	restaurant, err := sc.Resolve.ForCategory(uint(categoryID))
	if !authorize(c, sc.DB, restaurant, err) {
		return
	}

	type reqBody struct {
		Name        string `json:"name" binding:"required"`
		Image       string `json:"image"`
		Description string `json:"description"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	subcategory := models.Subcategory{
		CategoryID:  uint(categoryID),
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
	}
	if err := sc.DB.Create(&subcategory).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Subcategory created", subcategory)
}

// UpdateSubcategory
func (sc *SubcategoryController) UpdateSubcategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("subcat_id"))

	restaurant, err := sc.Resolve.ForSubcategory(uint(id))
	if !authorize(c, sc.DB, restaurant, err) {
		return
	}

	type reqBody struct {
		Name        string `json:"name"`
		Image       string `json:"image"`
		Description string `json:"description"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var subcategory models.Subcategory
	if err := sc.DB.First(&subcategory, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		subcategory.Name = body.Name
	}
	if body.Image != "" {
		subcategory.Image = body.Image
	}
	if body.Description != "" {
		subcategory.Description = body.Description
	}

	if err := sc.DB.Save(&subcategory).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Subcategory updated", subcategory)
}

// DeleteSubcategory
func (sc *SubcategoryController) DeleteSubcategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("subcat_id"))

	restaurant, err := sc.Resolve.ForSubcategory(uint(id))
	if !authorize(c, sc.DB, restaurant, err) {
		return
	}

	if err := sc.DB.Delete(&models.Subcategory{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Subcategory deleted", gin.H{"subcategory_id": id})
}
