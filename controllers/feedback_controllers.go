package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/utils"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// SubmitFeedback -> public form post from the storefront. All fields are
// required; nothing is stored when any is missing.
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	restaurantID := c.PostForm("restaurant_id")
	name := c.PostForm("feedbackName")
	message := c.PostForm("feedbackMessage")
	reaction := c.PostForm("reaction")

	if restaurantID == "" || name == "" || message == "" || reaction == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	id, err := strconv.Atoi(restaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant_id"})
		return
	}

	var restaurant models.Restaurant
	if err := fc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	feedback := models.Feedback{
		RestaurantID: restaurant.ID,
		Name:         name,
		Message:      message,
		Reaction:     reaction,
	}
	if err := fc.DB.Create(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Feedback submitted successfully"})
}

// GetAllFeedback -> the owner's feedback list
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	var feedbacks []models.Feedback

	q := fc.DB.Order("created_at DESC")
	if !c.GetBool("is_superuser") {
		restaurant, err := ownRestaurant(c, fc.DB)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		q = q.Where("restaurant_id = ?", restaurant.ID)
	}

	if err := q.Find(&feedbacks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All feedback", feedbacks)
}
