package models

import (
	"time"

	"gorm.io/gorm"
)

// Ads are placed by the platform operator. Each ad carries a display
// deadline and an explicit set of restaurants it may appear on.

type CatalogueAd struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Image       string       `gorm:"type:varchar(255);not null" json:"image"`
	DisplayUpto time.Time    `gorm:"not null" json:"display_upto"`
	DisplayIn   []Restaurant `gorm:"many2many:catalogue_ad_restaurants" json:"display_in,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CheckoutAd struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Image       string       `gorm:"type:varchar(255);not null" json:"image"`
	DisplayUpto time.Time    `gorm:"not null" json:"display_upto"`
	DisplayIn   []Restaurant `gorm:"many2many:checkout_ad_restaurants" json:"display_in,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type ProductAd struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Image       string       `gorm:"type:varchar(255);not null" json:"image"`
	DisplayUpto time.Time    `gorm:"not null" json:"display_upto"`
	DisplayIn   []Restaurant `gorm:"many2many:product_ad_restaurants" json:"display_in,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type VideoPageAd struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Image       string       `gorm:"type:varchar(255);not null" json:"image"`
	DisplayUpto time.Time    `gorm:"not null" json:"display_upto"`
	DisplayIn   []Restaurant `gorm:"many2many:video_page_ad_restaurants" json:"display_in,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ActiveCatalogueAds returns catalogue ads whose display window is still
// open and that list the restaurant as eligible.
func ActiveCatalogueAds(db *gorm.DB, restaurantID uint) ([]CatalogueAd, error) {
	var ads []CatalogueAd
	err := db.
		Joins("JOIN catalogue_ad_restaurants car ON car.catalogue_ad_id = catalogue_ads.id").
		Where("car.restaurant_id = ? AND catalogue_ads.display_upto >= ?", restaurantID, time.Now()).
		Find(&ads).Error
	return ads, err
}

func ActiveCheckoutAds(db *gorm.DB, restaurantID uint) ([]CheckoutAd, error) {
	var ads []CheckoutAd
	err := db.
		Joins("JOIN checkout_ad_restaurants car ON car.checkout_ad_id = checkout_ads.id").
		Where("car.restaurant_id = ? AND checkout_ads.display_upto >= ?", restaurantID, time.Now()).
		Find(&ads).Error
	return ads, err
}

func ActiveProductAds(db *gorm.DB, restaurantID uint) ([]ProductAd, error) {
	var ads []ProductAd
	err := db.
		Joins("JOIN product_ad_restaurants par ON par.product_ad_id = product_ads.id").
		Where("par.restaurant_id = ? AND product_ads.display_upto >= ?", restaurantID, time.Now()).
		Find(&ads).Error
	return ads, err
}

func ActiveVideoPageAds(db *gorm.DB, restaurantID uint) ([]VideoPageAd, error) {
	var ads []VideoPageAd
	err := db.
		Joins("JOIN video_page_ad_restaurants var ON var.video_page_ad_id = video_page_ads.id").
		Where("var.restaurant_id = ? AND video_page_ads.display_upto >= ?", restaurantID, time.Now()).
		Find(&ads).Error
	return ads, err
}
