package models

import "time"

// Option sections. The option is the billable unit of a product; the
// section tells which seating area the price applies to.
const (
	SectionAC    = "ac"
	SectionNonAC = "non-ac"
)

type Option struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Section   string    `gorm:"type:varchar(100);default:'non-ac'" json:"section"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
