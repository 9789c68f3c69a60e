package models

import "time"

type State struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type District struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StateID   uint      `gorm:"not null" json:"state_id"`
	State     State     `gorm:"foreignKey:StateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"state"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
