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

type CategoryController struct {
	DB      *gorm.DB
	Resolve *services.OwnershipResolver
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Resolve: services.NewOwnershipResolver(db)}
}

// GetAllCategories -> own categories, or every category for the superuser
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category

	q := cc.DB.Order("name")
	if !c.GetBool("is_superuser") {
		restaurant, err := ownRestaurant(c, cc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		q = q.Where("restaurant_id = ?", restaurant.ID)
	}

	if err := q.Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", categories)
}

// CreateCategory -> created into the acting owner's restaurant
func (cc *CategoryController) CreateCategory(c *gin.Context) {
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

	restaurant, err := ownRestaurant(c, cc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if restaurant.IsBlocked {
		utils.RespondError(c, http.StatusForbidden, ErrRestaurantBlocked)
		return
	}

	category := models.Category{
		RestaurantID: restaurant.ID,
		Name:         body.Name,
		Image:        body.Image,
		Description:  body.Description,
	}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// GetCategoryByID
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	restaurant, err := cc.Resolve.ForCategory(uint(id))
	if !authorize(c, cc.DB, restaurant, err) {
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var subcategories []models.Subcategory
	if err := cc.DB.Where("category_id = ?", category.ID).Order("name").Find(&subcategories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category detail", gin.H{
		"category":      category,
		"subcategories": subcategories,
	})
}

// UpdateCategory
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	restaurant, err := cc.Resolve.ForCategory(uint(id))
	if !authorize(c, cc.DB, restaurant, err) {
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

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		category.Name = body.Name
	}
	if body.Image != "" {
		category.Image = body.Image
	}
	if body.Description != "" {
		category.Description = body.Description
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	restaurant, err := cc.Resolve.ForCategory(uint(id))
	if !authorize(c, cc.DB, restaurant, err) {
		return
	}

	if err := cc.DB.Delete(&models.Category{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}
