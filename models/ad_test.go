package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdDB(t *testing.T) (*gorm.DB, Restaurant, Restaurant) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&User{},
		&State{},
		&District{},
		&Restaurant{},
		&CatalogueAd{},
		&CheckoutAd{},
		&ProductAd{},
		&VideoPageAd{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	first := Restaurant{Name: "Spice Garden"}
	assert.NoError(t, db.Create(&first).Error)
	second := Restaurant{Name: "Masala House"}
	assert.NoError(t, db.Create(&second).Error)
	return db, first, second
}

func TestActiveCatalogueAdsFiltersWindowAndPlacement(t *testing.T) {
	db, first, second := setupAdDB(t)

	running := CatalogueAd{
		Image:       "running.png",
		DisplayUpto: time.Now().Add(24 * time.Hour),
		DisplayIn:   []Restaurant{first},
	}
	assert.NoError(t, db.Create(&running).Error)

	expired := CatalogueAd{
		Image:       "expired.png",
		DisplayUpto: time.Now().Add(-24 * time.Hour),
		DisplayIn:   []Restaurant{first},
	}
	assert.NoError(t, db.Create(&expired).Error)

	elsewhere := CatalogueAd{
		Image:       "elsewhere.png",
		DisplayUpto: time.Now().Add(24 * time.Hour),
		DisplayIn:   []Restaurant{second},
	}
	assert.NoError(t, db.Create(&elsewhere).Error)

	ads, err := ActiveCatalogueAds(db, first.ID)
	assert.NoError(t, err)
	assert.Len(t, ads, 1)
	assert.Equal(t, "running.png", ads[0].Image)

	ads, err = ActiveCatalogueAds(db, second.ID)
	assert.NoError(t, err)
	assert.Len(t, ads, 1)
	assert.Equal(t, "elsewhere.png", ads[0].Image)
}

func TestActiveProductAdsEmptyWithoutPlacement(t *testing.T) {
	db, first, _ := setupAdDB(t)

	// An ad with no restaurants shows nowhere
	orphan := ProductAd{Image: "orphan.png", DisplayUpto: time.Now().Add(24 * time.Hour)}
	assert.NoError(t, db.Create(&orphan).Error)

	ads, err := ActiveProductAds(db, first.ID)
	assert.NoError(t, err)
	assert.Len(t, ads, 0)
}
