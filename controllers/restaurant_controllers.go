package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/services"
	"github.com/ajoneedienen/catalogue-app/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

type restaurantBody struct {
	Name            string `json:"name" binding:"required"`
	Logo            string `json:"logo"`
	DistrictID      *uint  `json:"district_id"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Whatsapp        string `json:"whatsapp"`
	WhatsappMessage string `json:"whatsapp_message"`
	FacebookURL     string `json:"facebook_url"`
	InstagramURL    string `json:"instagram_url"`
	YoutubeURL      string `json:"youtube_url"`
	TwitterURL      string `json:"twitter_url"`
	LocationURL     string `json:"location_url"`
	EnableSending   bool   `json:"enable_sending"`
	IsBooknow       bool   `json:"is_booknow"`
	IsSocialmedia   bool   `json:"is_socialmedia"`
}

func (b *restaurantBody) apply(r *models.Restaurant) {
	r.Name = b.Name
	r.Logo = b.Logo
	r.DistrictID = b.DistrictID
	r.Address = b.Address
	r.Phone = b.Phone
	r.Whatsapp = b.Whatsapp
	r.WhatsappMessage = b.WhatsappMessage
	r.FacebookURL = b.FacebookURL
	r.InstagramURL = b.InstagramURL
	r.YoutubeURL = b.YoutubeURL
	r.TwitterURL = b.TwitterURL
	r.LocationURL = b.LocationURL
	r.EnableSending = b.EnableSending
	r.IsBooknow = b.IsBooknow
	r.IsSocialmedia = b.IsSocialmedia
}

// GetAllRestaurants -> superuser tenant list
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Preload("District").Order("name").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// CreateRestaurant -> superuser onboards a tenant together with its staff
// account.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	type request struct {
		restaurantBody
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var taken int64
	if err := rc.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&taken).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if taken > 0 {
		utils.RespondJSON(c, http.StatusBadRequest, "Validation failed", gin.H{
			"errors": gin.H{"username": "Username is already taken."},
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	owner := models.User{Username: req.Username, Password: string(hashed), IsStaff: true}
	if err := rc.DB.Create(&owner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	restaurant := models.Restaurant{UserID: &owner.ID}
	req.apply(&restaurant)
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant created: %s (owner=%s)", restaurant.Name, owner.Username)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// GetRestaurantByID
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := rc.DB.Preload("District").Preload("User").First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// UpdateRestaurant -> superuser edit, including blocking
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurant_id"))

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type request struct {
		restaurantBody
		IsBlocked *bool `json:"is_blocked"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	req.apply(&restaurant)
	if req.IsBlocked != nil {
		restaurant.IsBlocked = *req.IsBlocked
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// Onboard -> a freshly registered staff user provisions their own
// restaurant. Seeds the default menu unless disabled; seeding only ever
// happens here, on first-time onboarding.
func (rc *RestaurantController) Onboard(c *gin.Context) {
	user, err := currentUser(c, rc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	if _, err := ownRestaurant(c, rc.DB); err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("restaurant already exists for this account"))
		return
	}

	type request struct {
		restaurantBody
		SeedDefaults *bool `json:"seed_defaults"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{UserID: &user.ID}
	req.apply(&restaurant)
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if req.SeedDefaults == nil || *req.SeedDefaults {
		if err := services.SeedDefaultMenu(rc.DB, &restaurant); err != nil {
			utils.ErrorLogger.Printf("Default menu seeding failed for restaurant %d: %v", restaurant.ID, err)
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.InfoLogger.Printf("Restaurant onboarded: %s (user=%s)", restaurant.Name, user.Username)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant onboarded", restaurant)
}

// GetMyRestaurant -> owner profile view, flags blocked tenants
func (rc *RestaurantController) GetMyRestaurant(c *gin.Context) {
	restaurant, err := ownRestaurant(c, rc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var categoryCount, subcategoryCount, productCount int64
	rc.DB.Model(&models.Category{}).Where("restaurant_id = ?", restaurant.ID).Count(&categoryCount)
	rc.DB.Model(&models.Subcategory{}).
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Where("categories.restaurant_id = ?", restaurant.ID).Count(&subcategoryCount)
	rc.DB.Model(&models.Product{}).
		Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Where("categories.restaurant_id = ? AND products.is_active = ?", restaurant.ID, true).
		Count(&productCount)

	utils.RespondJSON(c, http.StatusOK, "Restaurant profile", gin.H{
		"restaurant":        restaurant,
		"is_blocked":        restaurant.IsBlocked,
		"category_count":    categoryCount,
		"subcategory_count": subcategoryCount,
		"product_count":     productCount,
	})
}

// UpdateMyRestaurant -> owner edits their own profile; blocking stays
// superuser-only.
func (rc *RestaurantController) UpdateMyRestaurant(c *gin.Context) {
	restaurant, err := ownRestaurant(c, rc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req restaurantBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	req.apply(restaurant)
	if err := rc.DB.Save(restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}
