package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(150);unique;not null" json:"username"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	IsStaff     bool      `gorm:"default:true" json:"is_staff"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
