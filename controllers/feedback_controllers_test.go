package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/controllers"
	"github.com/ajoneedienen/catalogue-app/models"
)

func setupFeedbackRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	fc := controllers.NewFeedbackController(db)
	r.POST("/feedback", fc.SubmitFeedback)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitFeedback(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupFeedbackRouter(db)

	form := url.Values{}
	form.Set("restaurant_id", strconv.Itoa(int(restaurant.ID)))
	form.Set("feedbackName", "Asha")
	form.Set("feedbackMessage", "Lovely food")
	form.Set("reaction", "good")

	w := postForm(r, "/feedback", form)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feedback submitted successfully", resp["success"])

	var count int64
	db.Model(&models.Feedback{}).Where("restaurant_id = ?", restaurant.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitFeedbackMissingField(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupFeedbackRouter(db)

	// reaction is omitted; nothing may be stored
	form := url.Values{}
	form.Set("restaurant_id", strconv.Itoa(int(restaurant.ID)))
	form.Set("feedbackName", "Asha")
	form.Set("feedbackMessage", "Lovely food")

	w := postForm(r, "/feedback", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "All fields are required", resp["error"])

	var count int64
	db.Model(&models.Feedback{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitFeedbackUnknownRestaurant(t *testing.T) {
	db := setupTestDB(t)
	r := setupFeedbackRouter(db)

	form := url.Values{}
	form.Set("restaurant_id", "9999")
	form.Set("feedbackName", "Asha")
	form.Set("feedbackMessage", "Lovely food")
	form.Set("reaction", "good")

	w := postForm(r, "/feedback", form)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
