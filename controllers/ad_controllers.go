package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/utils"
)

// AdController manages platform-placed content: banners, dated ad sets
// and landing badges. Superuser-only.
type AdController struct {
	DB *gorm.DB
}

func NewAdController(db *gorm.DB) *AdController {
	return &AdController{DB: db}
}

// CreateBanner
func (ac *AdController) CreateBanner(c *gin.Context) {
	type reqBody struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Image        string `json:"image" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := ac.DB.First(&restaurant, body.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	banner := models.Banner{RestaurantID: body.RestaurantID, Image: body.Image}
	if err := ac.DB.Create(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Banner created", banner)
}

// DeleteBanner
func (ac *AdController) DeleteBanner(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("banner_id"))

	if err := ac.DB.Delete(&models.Banner{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Banner deleted", gin.H{"banner_id": id})
}

type adBody struct {
	Image         string `json:"image" binding:"required"`
	DisplayUpto   string `json:"display_upto" binding:"required"` // YYYY-MM-DD
	RestaurantIDs []uint `json:"restaurant_ids"`
}

func (b *adBody) parse(db *gorm.DB) (time.Time, []models.Restaurant, error) {
	upto, err := time.Parse("2006-01-02", b.DisplayUpto)
	if err != nil {
		return time.Time{}, nil, err
	}
	// The display window is inclusive of the named day.
	upto = upto.Add(24*time.Hour - time.Second)

	var restaurants []models.Restaurant
	if len(b.RestaurantIDs) > 0 {
		if err := db.Find(&restaurants, b.RestaurantIDs).Error; err != nil {
			return time.Time{}, nil, err
		}
	}
	return upto, restaurants, nil
}

// CreateProductAd
func (ac *AdController) CreateProductAd(c *gin.Context) {
	var body adBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	upto, restaurants, err := body.parse(ac.DB)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ad := models.ProductAd{Image: body.Image, DisplayUpto: upto, DisplayIn: restaurants}
	if err := ac.DB.Create(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product ad created", ad)
}

// CreateCatalogueAd
func (ac *AdController) CreateCatalogueAd(c *gin.Context) {
	var body adBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	upto, restaurants, err := body.parse(ac.DB)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ad := models.CatalogueAd{Image: body.Image, DisplayUpto: upto, DisplayIn: restaurants}
	if err := ac.DB.Create(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Catalogue ad created", ad)
}

// CreateCheckoutAd
func (ac *AdController) CreateCheckoutAd(c *gin.Context) {
	var body adBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	upto, restaurants, err := body.parse(ac.DB)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ad := models.CheckoutAd{Image: body.Image, DisplayUpto: upto, DisplayIn: restaurants}
	if err := ac.DB.Create(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Checkout ad created", ad)
}

// CreateVideoPageAd
func (ac *AdController) CreateVideoPageAd(c *gin.Context) {
	var body adBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	upto, restaurants, err := body.parse(ac.DB)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ad := models.VideoPageAd{Image: body.Image, DisplayUpto: upto, DisplayIn: restaurants}
	if err := ac.DB.Create(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Video page ad created", ad)
}

// CreateBadge
func (ac *AdController) CreateBadge(c *gin.Context) {
	type reqBody struct {
		Title string `json:"title" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	badge := models.Badge{Title: body.Title, Value: body.Value}
	if err := ac.DB.Create(&badge).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Badge created", badge)
}
