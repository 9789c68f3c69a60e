package models

import "time"

type Category struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	ReferenceID  *uint            `json:"reference_id,omitempty"`
	Reference    *DefaultCategory `gorm:"foreignKey:ReferenceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	RestaurantID uint             `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant       `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string           `gorm:"type:varchar(100);not null" json:"name"`
	Image        string           `gorm:"type:varchar(255)" json:"image"`
	Description  string           `gorm:"type:text" json:"description"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
