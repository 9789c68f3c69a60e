package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboard -> platform-wide counts for the superuser landing page
func (ac *AdminController) GetDashboard(c *gin.Context) {
	var restaurants, categories, subcategories, products int64

	if err := ac.DB.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	ac.DB.Model(&models.Category{}).Count(&categories)
	ac.DB.Model(&models.Subcategory{}).Count(&subcategories)
	ac.DB.Model(&models.Product{}).Count(&products)

	utils.RespondJSON(c, http.StatusOK, "Dashboard", gin.H{
		"restaurant_count":  restaurants,
		"category_count":    categories,
		"subcategory_count": subcategories,
		"product_count":     products,
	})
}
