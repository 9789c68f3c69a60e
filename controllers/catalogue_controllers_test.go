package controllers_test

import (
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

func setupCatalogueRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	cc := controllers.NewCatalogueController(db)

	store := r.Group("/")
	store.Use(middlewares.SessionMiddleware())
	{
		store.GET("/catalogue/:restaurant_id", cc.GetCatalogue)
		store.GET("/c/:slug", cc.GetCatalogueBySlug)
		store.GET("/catalogue/:restaurant_id/products", cc.ListProducts)
		store.GET("/cart/plus", cc.CartItemPlus)
		store.GET("/cart/minus", cc.CartItemMinus)
	}
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCatalogueCountsVisitors(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupCatalogueRouter(db)

	var before models.Restaurant
	assert.NoError(t, db.First(&before, restaurant.ID).Error)

	w, _ := getJSON(t, r, fmt.Sprintf("/catalogue/%d", restaurant.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	var after models.Restaurant
	assert.NoError(t, db.First(&after, restaurant.ID).Error)
	assert.Equal(t, before.VisitorCount+1, after.VisitorCount)
}

func TestCatalogueBySlug(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupCatalogueRouter(db)

	assert.Equal(t, "spice-garden", restaurant.Slug)

	w, resp := getJSON(t, r, "/c/spice-garden")
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	rest := data["restaurant"].(map[string]interface{})
	assert.Equal(t, "Spice Garden", rest["name"])

	w, _ = getJSON(t, r, "/c/no-such-place")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductSearch(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	category, _ := seedMenuFor(t, db, restaurant, 8.00)

	var subcategory models.Subcategory
	assert.NoError(t, db.Where("category_id = ?", category.ID).First(&subcategory).Error)
	dal := models.Product{SubcategoryID: subcategory.ID, Name: "Dal Fry", Description: "slow cooked lentils", IsActive: true}
	assert.NoError(t, db.Create(&dal).Error)

	r := setupCatalogueRouter(db)

	// Substring match on the name
	w, resp := getJSON(t, r, fmt.Sprintf("/catalogue/%d/products?q=Paneer", restaurant.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	products := resp["data"].(map[string]interface{})["products"].([]interface{})
	assert.Len(t, products, 1)

	// Substring match on the description
	w, resp = getJSON(t, r, fmt.Sprintf("/catalogue/%d/products?q=lentils", restaurant.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	products = resp["data"].(map[string]interface{})["products"].([]interface{})
	assert.Len(t, products, 1)

	// No filter returns everything
	w, resp = getJSON(t, r, fmt.Sprintf("/catalogue/%d/products", restaurant.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	products = resp["data"].(map[string]interface{})["products"].([]interface{})
	assert.Len(t, products, 2)
}

func TestCartPlusAndMinusEndpoints(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	_, option := seedMenuFor(t, db, restaurant, 8.00)
	r := setupCatalogueRouter(db)

	plusURL := fmt.Sprintf("/cart/plus?session_key=sess-1&restaurant_pk=%d&option=%d", restaurant.ID, option.ID)
	minusURL := fmt.Sprintf("/cart/minus?session_key=sess-1&restaurant_pk=%d&option=%d", restaurant.ID, option.ID)

	w, resp := getJSON(t, r, plusURL)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["quantity"])
	assert.Equal(t, 8.00, resp["subtotal"])

	w, resp = getJSON(t, r, plusURL)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), resp["quantity"])
	assert.Equal(t, 16.00, resp["subtotal"])

	w, resp = getJSON(t, r, minusURL)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["quantity"])

	// Last unit: the line disappears and the response reports zero
	w, resp = getJSON(t, r, minusURL)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(0), resp["quantity"])
	assert.Equal(t, float64(0), resp["subtotal"])

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(0), count)

	w, _ = getJSON(t, r, minusURL)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartPlusUnknownOption(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupCatalogueRouter(db)

	w, _ := getJSON(t, r, fmt.Sprintf("/cart/plus?session_key=sess-1&restaurant_pk=%d&option=9999", restaurant.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionCookieProvisioned(t *testing.T) {
	db := setupTestDB(t)
	_, restaurant := seedOwner(t, db, "owner1", "Spice Garden")
	r := setupCatalogueRouter(db)

	req, _ := http.NewRequest("GET", fmt.Sprintf("/catalogue/%d", restaurant.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "cart_session" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "cart_session cookie should be set for new visitors")
}
