package models

import "time"

// CartItem is one line of an anonymous session cart. A logical line is
// identified by (session_key, restaurant, option); the unique composite
// index makes concurrent adds collapse into a single row.
type CartItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_cart_line" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SessionKey   string     `gorm:"type:varchar(200);not null;uniqueIndex:idx_cart_line" json:"session_key"`
	OptionID     uint       `gorm:"not null;uniqueIndex:idx_cart_line" json:"option_id"`
	Option       Option     `gorm:"foreignKey:OptionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"option"`
	Quantity     int        `gorm:"not null;default:0" json:"quantity"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TotalPrice is the line subtotal. Option must be preloaded.
func (ci *CartItem) TotalPrice() float64 {
	return ci.Option.Price * float64(ci.Quantity)
}
