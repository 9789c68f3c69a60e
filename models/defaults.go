package models

import "time"

// The default tree is the global template menu copied into a restaurant's
// own tree at onboarding. It belongs to no restaurant and is never billed.

type DefaultCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DefaultSubcategory struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Category    DefaultCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Image       string          `gorm:"type:varchar(255)" json:"image"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type DefaultProduct struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	SubcategoryID   uint               `gorm:"not null;index" json:"subcategory_id"`
	Subcategory     DefaultSubcategory `gorm:"foreignKey:SubcategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name            string             `gorm:"type:varchar(100);not null" json:"name"`
	Description     string             `gorm:"type:text" json:"description"`
	Ingredients     string             `gorm:"type:text" json:"ingredients"`
	Image           string             `gorm:"type:varchar(255)" json:"image"`
	IsPopular       bool               `gorm:"default:true" json:"is_popular"`
	IsVegetarian    bool               `gorm:"default:true" json:"is_vegetarian"`
	DisplayFoodtype bool               `gorm:"default:true" json:"display_foodtype"`
	IsActive        bool               `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type DefaultOption struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	Product   DefaultProduct `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Section   string         `gorm:"type:varchar(100);default:'non-ac'" json:"section"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Price     float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
