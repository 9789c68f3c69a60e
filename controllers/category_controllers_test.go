package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/controllers"
	"github.com/ajoneedienen/catalogue-app/middlewares"
	"github.com/ajoneedienen/catalogue-app/models"
)

func setupCategoryRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	cc := controllers.NewCategoryController(db)

	dash := r.Group("/dash")
	dash.Use(middlewares.AuthMiddleware())
	{
		dash.GET("/categories", cc.GetAllCategories)
		dash.POST("/categories", cc.CreateCategory)
		dash.PATCH("/categories/:cat_id", cc.UpdateCategory)
		dash.DELETE("/categories/:cat_id", cc.DeleteCategory)
	}
	return r
}

func patchJSON(r *gin.Engine, path, token string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("PATCH", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateCategoryOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	intruder, _ := seedOwner(t, db, "owner2", "Masala House")
	category, _ := seedMenuFor(t, db, restaurant, 8.00)

	superuser := models.User{Username: "root", Password: "x", IsSuperuser: true}
	assert.NoError(t, db.Create(&superuser).Error)

	r := setupCategoryRouter(db)
	path := fmt.Sprintf("/dash/categories/%d", category.ID)
	payload := map[string]interface{}{"name": "Renamed"}

	// A staff user of another restaurant may not touch it
	w := patchJSON(r, path, bearerToken(t, intruder), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.Category
	assert.NoError(t, db.First(&unchanged, category.ID).Error)
	assert.Equal(t, "Mains", unchanged.Name)

	// The owner may
	w = patchJSON(r, path, bearerToken(t, owner), payload)
	assert.Equal(t, http.StatusOK, w.Code)

	// The superuser may, on any tenant
	w = patchJSON(r, path, bearerToken(t, superuser), map[string]interface{}{"name": "Renamed Again"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Category
	assert.NoError(t, db.First(&updated, category.ID).Error)
	assert.Equal(t, "Renamed Again", updated.Name)
}

func TestBlockedRestaurantCannotMutate(t *testing.T) {
	db := setupTestDB(t)
	owner, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	category, _ := seedMenuFor(t, db, restaurant, 8.00)

	assert.NoError(t, db.Model(&restaurant).Update("is_blocked", true).Error)

	r := setupCategoryRouter(db)
	path := fmt.Sprintf("/dash/categories/%d", category.ID)

	w := patchJSON(r, path, bearerToken(t, owner), map[string]interface{}{"name": "Renamed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reading stays open
	req, _ := http.NewRequest("GET", "/dash/categories", nil)
	req.Header.Set("Authorization", bearerToken(t, owner))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	db := setupTestDB(t)
	owner, _ := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupCategoryRouter(db)

	w := patchJSON(r, "/dash/categories/9999", bearerToken(t, owner), map[string]interface{}{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryListScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	owner, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	other, otherRestaurant := seedOwner(t, db, "owner2", "Masala House")
	seedMenuFor(t, db, restaurant, 8.00)
	seedMenuFor(t, db, otherRestaurant, 6.00)

	r := setupCategoryRouter(db)

	req, _ := http.NewRequest("GET", "/dash/categories", nil)
	req.Header.Set("Authorization", bearerToken(t, owner))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	categories := resp["data"].([]interface{})
	assert.Len(t, categories, 1)

	req, _ = http.NewRequest("GET", "/dash/categories", nil)
	req.Header.Set("Authorization", bearerToken(t, other))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	resp = map[string]interface{}{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	categories = resp["data"].([]interface{})
	assert.Len(t, categories, 1)
}

func TestUpdateCategoryRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	category, _ := seedMenuFor(t, db, restaurant, 8.00)

	r := setupCategoryRouter(db)

	body, _ := json.Marshal(map[string]interface{}{"name": "x"})
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/dash/categories/%d", category.ID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
