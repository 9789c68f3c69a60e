package controllers_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
	"github.com/ajoneedienen/catalogue-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.State{},
		&models.District{},
		&models.Restaurant{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Option{},
		&models.DefaultCategory{},
		&models.DefaultSubcategory{},
		&models.DefaultProduct{},
		&models.DefaultOption{},
		&models.CartItem{},
		&models.Notification{},
		&models.Feedback{},
		&models.Banner{},
		&models.Badge{},
		&models.CatalogueAd{},
		&models.CheckoutAd{},
		&models.ProductAd{},
		&models.VideoPageAd{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedOwner creates a staff user with a restaurant bound to it.
func seedOwner(t *testing.T, db *gorm.DB, username, restaurantName string) (models.User, models.Restaurant) {
	t.Helper()

	user := models.User{Username: username, Password: "x", IsStaff: true}
	assert.NoError(t, db.Create(&user).Error)

	restaurant := models.Restaurant{UserID: &user.ID, Name: restaurantName}
	assert.NoError(t, db.Create(&restaurant).Error)

	return user, restaurant
}

// seedMenuFor hangs a category, subcategory, product and a priced option
// off the restaurant.
func seedMenuFor(t *testing.T, db *gorm.DB, restaurant models.Restaurant, price float64) (models.Category, models.Option) {
	t.Helper()

	category := models.Category{RestaurantID: restaurant.ID, Name: "Mains"}
	assert.NoError(t, db.Create(&category).Error)
	subcategory := models.Subcategory{CategoryID: category.ID, Name: "Curries"}
	assert.NoError(t, db.Create(&subcategory).Error)
	product := models.Product{SubcategoryID: subcategory.ID, Name: "Paneer Butter Masala", IsActive: true}
	assert.NoError(t, db.Create(&product).Error)
	option := models.Option{ProductID: product.ID, Name: "Full", Section: models.SectionNonAC, Price: price}
	assert.NoError(t, db.Create(&option).Error)

	return category, option
}

func bearerToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.IsSuperuser)
	assert.NoError(t, err)
	return "Bearer " + token
}
