package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	SubcategoryID   uint        `gorm:"not null;index" json:"subcategory_id"`
	Subcategory     Subcategory `gorm:"foreignKey:SubcategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name            string      `gorm:"type:varchar(100);not null" json:"name"`
	Description     string      `gorm:"type:text" json:"description"`
	Ingredients     string      `gorm:"type:text" json:"ingredients"`
	Image           string      `gorm:"type:varchar(255)" json:"image"`
	IsPopular       bool        `gorm:"default:true" json:"is_popular"`
	IsVegetarian    bool        `gorm:"default:true" json:"is_vegetarian"`
	DisplayFoodtype bool        `gorm:"default:true" json:"display_foodtype"`
	IsActive        bool        `gorm:"default:true" json:"is_active"`
	Options         []Option    `gorm:"foreignKey:ProductID" json:"options,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// MinPrice returns the cheapest option price of the product, or nil when
// the product has no options. A product carries no price of its own.
func (p *Product) MinPrice(db *gorm.DB) *float64 {
	return p.minOptionPrice(db, "")
}

// MinPriceForSection returns the cheapest option price restricted to the
// given section ("ac" or "non-ac"), or nil when no option has that section.
func (p *Product) MinPriceForSection(db *gorm.DB, section string) *float64 {
	return p.minOptionPrice(db, section)
}

func (p *Product) minOptionPrice(db *gorm.DB, section string) *float64 {
	q := db.Model(&Option{}).Where("product_id = ?", p.ID)
	if section != "" {
		q = q.Where("section = ?", section)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil || count == 0 {
		return nil
	}

	var min float64
	if err := q.Select("MIN(price)").Scan(&min).Error; err != nil {
		return nil
	}
	return &min
}
