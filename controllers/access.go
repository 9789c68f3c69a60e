package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/services"
	"github.com/ajoneedienen/catalogue-app/utils"
)

var (
	ErrNoPermission      = errors.New("you do not have permission")
	ErrRestaurantBlocked = errors.New("restaurant is blocked")
)

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

// currentUser loads the acting principal placed into the context by the
// auth middleware.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		return nil, errors.New("user id not found in context")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// authorize rejects the request with 403 unless the acting user is the
// superuser or the staff account of the owning restaurant. The resolver
// result is passed in so each handler resolves ownership exactly once.
func authorize(c *gin.Context, db *gorm.DB, restaurant *models.Restaurant, err error) bool {
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return false
	}

	user, err := currentUser(c, db)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return false
	}

	if !services.Allowed(user, restaurant) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return false
	}

	// Blocked tenants keep read access but lose menu mutation until the
	// superuser unblocks them.
	if restaurant.IsBlocked && !user.IsSuperuser && c.Request.Method != http.MethodGet {
		utils.RespondError(c, http.StatusForbidden, ErrRestaurantBlocked)
		return false
	}
	return true
}

// ownRestaurant returns the restaurant bound to the acting staff user.
func ownRestaurant(c *gin.Context, db *gorm.DB) (*models.Restaurant, error) {
	userID := c.GetUint("user_id")
	var restaurant models.Restaurant
	if err := db.Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
