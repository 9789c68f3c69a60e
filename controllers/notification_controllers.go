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

type NotificationController struct {
	DB      *gorm.DB
	Resolve *services.OwnershipResolver
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Resolve: services.NewOwnershipResolver(db)}
}

// GetAllNotifications -> the owner's notifications
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	var notifs []models.Notification

	q := nc.DB.Order("created_at DESC")
	if !c.GetBool("is_superuser") {
		restaurant, err := ownRestaurant(c, nc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		q = q.Where("restaurant_id = ?", restaurant.ID)
	}

	if err := q.Find(&notifs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}

// CreateNotification -> shown on the restaurant's public storefront
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	type reqBody struct {
		Notification string `json:"notification" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := ownRestaurant(c, nc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if restaurant.IsBlocked {
		utils.RespondError(c, http.StatusForbidden, ErrRestaurantBlocked)
		return
	}

	notif := models.Notification{
		RestaurantID: restaurant.ID,
		Notification: body.Notification,
	}
	if err := nc.DB.Create(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Notification created for restaurant %d", restaurant.ID)
	utils.RespondJSON(c, http.StatusCreated, "Notification created", notif)
}

// GetNotificationByID
func (nc *NotificationController) GetNotificationByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notif_id"))

	restaurant, err := nc.Resolve.ForNotification(uint(id))
	if !authorize(c, nc.DB, restaurant, err) {
		return
	}

	var notif models.Notification
	if err := nc.DB.First(&notif, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification detail", notif)
}

// UpdateNotification
func (nc *NotificationController) UpdateNotification(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notif_id"))

	restaurant, err := nc.Resolve.ForNotification(uint(id))
	if !authorize(c, nc.DB, restaurant, err) {
		return
	}

	type reqBody struct {
		Notification string `json:"notification" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var notif models.Notification
	if err := nc.DB.First(&notif, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	notif.Notification = body.Notification
	if err := nc.DB.Save(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification updated", notif)
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notif_id"))

	restaurant, err := nc.Resolve.ForNotification(uint(id))
	if !authorize(c, nc.DB, restaurant, err) {
		return
	}

	if err := nc.DB.Delete(&models.Notification{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": id})
}
