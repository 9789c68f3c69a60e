package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/models"
)

func setupSeederDB(t *testing.T) *gorm.DB {
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
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedDefaultTree builds a template menu of two categories, each with one
// subcategory; the first subcategory has two products (one with two
// options), the second has one product with one option.
func seedDefaultTree(t *testing.T, db *gorm.DB) {
	t.Helper()

	starters := models.DefaultCategory{Name: "Starters"}
	assert.NoError(t, db.Create(&starters).Error)
	mains := models.DefaultCategory{Name: "Mains"}
	assert.NoError(t, db.Create(&mains).Error)

	soups := models.DefaultSubcategory{CategoryID: starters.ID, Name: "Soups"}
	assert.NoError(t, db.Create(&soups).Error)
	curries := models.DefaultSubcategory{CategoryID: mains.ID, Name: "Curries"}
	assert.NoError(t, db.Create(&curries).Error)

	tomato := models.DefaultProduct{SubcategoryID: soups.ID, Name: "Tomato Soup", IsActive: true}
	assert.NoError(t, db.Create(&tomato).Error)
	sweetcorn := models.DefaultProduct{SubcategoryID: soups.ID, Name: "Sweetcorn Soup", IsActive: true}
	assert.NoError(t, db.Create(&sweetcorn).Error)
	paneer := models.DefaultProduct{SubcategoryID: curries.ID, Name: "Paneer Butter Masala", IsActive: true}
	assert.NoError(t, db.Create(&paneer).Error)

	assert.NoError(t, db.Create(&models.DefaultOption{ProductID: tomato.ID, Name: "Full", Price: 4.00}).Error)
	assert.NoError(t, db.Create(&models.DefaultOption{ProductID: tomato.ID, Name: "Half", Price: 2.50}).Error)
	assert.NoError(t, db.Create(&models.DefaultOption{ProductID: paneer.ID, Name: "Full", Price: 9.00}).Error)
}

func TestSeedDefaultMenuMirrorsTemplate(t *testing.T) {
	db := setupSeederDB(t)
	seedDefaultTree(t, db)

	restaurant := models.Restaurant{Name: "Spice Garden"}
	assert.NoError(t, db.Create(&restaurant).Error)

	assert.NoError(t, SeedDefaultMenu(db, &restaurant))

	var categories, subcategories, products, options int64
	db.Model(&models.Category{}).Where("restaurant_id = ?", restaurant.ID).Count(&categories)
	db.Model(&models.Subcategory{}).Count(&subcategories)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Option{}).Count(&options)

	assert.Equal(t, int64(2), categories)
	assert.Equal(t, int64(2), subcategories)
	assert.Equal(t, int64(3), products)
	assert.Equal(t, int64(3), options)

	// Seeded categories keep a reference back to the template.
	var seeded []models.Category
	db.Where("restaurant_id = ?", restaurant.ID).Find(&seeded)
	for _, cat := range seeded {
		assert.NotNil(t, cat.ReferenceID)
	}
}

func TestSeedDefaultMenuRunsOnlyOnce(t *testing.T) {
	db := setupSeederDB(t)
	seedDefaultTree(t, db)

	restaurant := models.Restaurant{Name: "Spice Garden"}
	assert.NoError(t, db.Create(&restaurant).Error)

	assert.NoError(t, SeedDefaultMenu(db, &restaurant))

	err := SeedDefaultMenu(db, &restaurant)
	assert.True(t, errors.Is(err, ErrMenuExists))

	var categories int64
	db.Model(&models.Category{}).Where("restaurant_id = ?", restaurant.ID).Count(&categories)
	assert.Equal(t, int64(2), categories)
}

func TestSeedDefaultMenuEmptyTemplate(t *testing.T) {
	db := setupSeederDB(t)

	restaurant := models.Restaurant{Name: "Spice Garden"}
	assert.NoError(t, db.Create(&restaurant).Error)

	assert.NoError(t, SeedDefaultMenu(db, &restaurant))

	var categories int64
	db.Model(&models.Category{}).Count(&categories)
	assert.Equal(t, int64(0), categories)
}
