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

type ProductController struct {
	DB      *gorm.DB
	Resolve *services.OwnershipResolver
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, Resolve: services.NewOwnershipResolver(db)}
}

// GetAllProducts -> the owner sees their active products; the superuser
// sees everything.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	var products []models.Product

	q := pc.DB.Preload("Options").Order("products.name")
	if !c.GetBool("is_superuser") {
		restaurant, err := ownRestaurant(c, pc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		q = q.Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
			Joins("JOIN categories ON categories.id = subcategories.category_id").
			Where("categories.restaurant_id = ? AND products.is_active = ?", restaurant.ID, true)
	}

	if err := q.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All products", products)
}

type productBody struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Ingredients     string `json:"ingredients"`
	Image           string `json:"image"`
	IsPopular       *bool  `json:"is_popular"`
	IsVegetarian    *bool  `json:"is_vegetarian"`
	DisplayFoodtype *bool  `json:"display_foodtype"`
	IsActive        *bool  `json:"is_active"`
}

func (b *productBody) apply(p *models.Product) {
	if b.Name != "" {
		p.Name = b.Name
	}
	if b.Description != "" {
		p.Description = b.Description
	}
	if b.Ingredients != "" {
		p.Ingredients = b.Ingredients
	}
	if b.Image != "" {
		p.Image = b.Image
	}
	if b.IsPopular != nil {
		p.IsPopular = *b.IsPopular
	}
	if b.IsVegetarian != nil {
		p.IsVegetarian = *b.IsVegetarian
	}
	if b.DisplayFoodtype != nil {
		p.DisplayFoodtype = *b.DisplayFoodtype
	}
	if b.IsActive != nil {
		p.IsActive = *b.IsActive
	}
}

// CreateProduct -> created under an owned subcategory. The submitted
// price becomes the product's initial "Full" option; the product itself
// never carries a price.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	type reqBody struct {
		productBody
		SubcategoryID uint     `json:"subcategory_id" binding:"required"`
		Price         *float64 `json:"price"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := pc.Resolve.ForSubcategory(body.SubcategoryID)
	if !authorize(c, pc.DB, restaurant, err) {
		return
	}

	product := models.Product{
		SubcategoryID:   body.SubcategoryID,
		IsPopular:       true,
		IsVegetarian:    true,
		DisplayFoodtype: true,
		IsActive:        true,
	}
	body.apply(&product)
	if product.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errRequired("name"))
		return
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if body.Price != nil {
		option := models.Option{
			ProductID: product.ID,
			Name:      "Full",
			Section:   models.SectionNonAC,
			Price:     *body.Price,
		}
		if err := pc.DB.Create(&option).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		product.Options = []models.Option{option}
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// GetProductByID -> detail with options and derived minimum prices
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	restaurant, err := pc.Resolve.ForProduct(uint(id))
	if !authorize(c, pc.DB, restaurant, err) {
		return
	}

	var product models.Product
	if err := pc.DB.Preload("Options").First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", gin.H{
		"product":          product,
		"min_price":        product.MinPrice(pc.DB),
		"min_ac_price":     product.MinPriceForSection(pc.DB, models.SectionAC),
		"min_non_ac_price": product.MinPriceForSection(pc.DB, models.SectionNonAC),
	})
}

// UpdateProduct
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	restaurant, err := pc.Resolve.ForProduct(uint(id))
	if !authorize(c, pc.DB, restaurant, err) {
		return
	}

	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	body.apply(&product)
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	restaurant, err := pc.Resolve.ForProduct(uint(id))
	if !authorize(c, pc.DB, restaurant, err) {
		return
	}

	if err := pc.DB.Delete(&models.Product{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}
