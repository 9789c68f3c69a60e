package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/utils"
)

// DefaultMenuController manages the global template tree that seeds new
// restaurants. Mutations are superuser-only; owners may browse it.
type DefaultMenuController struct {
	DB *gorm.DB
}

func NewDefaultMenuController(db *gorm.DB) *DefaultMenuController {
	return &DefaultMenuController{DB: db}
}

// GetDefaultCategories
func (dc *DefaultMenuController) GetDefaultCategories(c *gin.Context) {
	var categories []models.DefaultCategory
	if err := dc.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Default categories", categories)
}

// GetDefaultSubcategories
func (dc *DefaultMenuController) GetDefaultSubcategories(c *gin.Context) {
	var subcategories []models.DefaultSubcategory
	if err := dc.DB.Order("name").Find(&subcategories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Default subcategories", subcategories)
}

// GetDefaultProducts
func (dc *DefaultMenuController) GetDefaultProducts(c *gin.Context) {
	var products []models.DefaultProduct
	if err := dc.DB.Order("name").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Default products", products)
}

// CreateDefaultCategory
func (dc *DefaultMenuController) CreateDefaultCategory(c *gin.Context) {
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

	category := models.DefaultCategory{Name: body.Name, Image: body.Image, Description: body.Description}
	if err := dc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Default category created", category)
}

// CreateDefaultSubcategory
func (dc *DefaultMenuController) CreateDefaultSubcategory(c *gin.Context) {
	type reqBody struct {
		CategoryID  uint   `json:"category_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Image       string `json:"image"`
		Description string `json:"description"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.DefaultCategory
	if err := dc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	subcategory := models.DefaultSubcategory{
		CategoryID:  body.CategoryID,
		Name:        body.Name,
		Image:       body.Image,
		Description: body.Description,
	}
	if err := dc.DB.Create(&subcategory).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Default subcategory created", subcategory)
}

// CreateDefaultProduct
func (dc *DefaultMenuController) CreateDefaultProduct(c *gin.Context) {
	type reqBody struct {
		SubcategoryID uint   `json:"subcategory_id" binding:"required"`
		Name          string `json:"name" binding:"required"`
		Description   string `json:"description"`
		Ingredients   string `json:"ingredients"`
		Image         string `json:"image"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var subcategory models.DefaultSubcategory
	if err := dc.DB.First(&subcategory, body.SubcategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	product := models.DefaultProduct{
		SubcategoryID:   body.SubcategoryID,
		Name:            body.Name,
		Description:     body.Description,
		Ingredients:     body.Ingredients,
		Image:           body.Image,
		IsPopular:       true,
		IsVegetarian:    true,
		DisplayFoodtype: true,
		IsActive:        true,
	}
	if err := dc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Default product created", product)
}

// CreateDefaultOption
func (dc *DefaultMenuController) CreateDefaultOption(c *gin.Context) {
	type reqBody struct {
		ProductID uint     `json:"product_id" binding:"required"`
		Name      string   `json:"name" binding:"required"`
		Section   string   `json:"section"`
		Price     *float64 `json:"price" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Section == "" {
		body.Section = models.SectionNonAC
	}

	var product models.DefaultProduct
	if err := dc.DB.First(&product, body.ProductID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	option := models.DefaultOption{
		ProductID: body.ProductID,
		Name:      body.Name,
		Section:   body.Section,
		Price:     *body.Price,
	}
	if err := dc.DB.Create(&option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Default option created", option)
}

// DeleteDefaultCategory -> cascades down the template tree
func (dc *DefaultMenuController) DeleteDefaultCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	if err := dc.DB.Delete(&models.DefaultCategory{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Default category deleted", gin.H{"category_id": id})
}
