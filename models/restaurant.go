package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ajoneedienen/catalogue-app/utils"
)

type Restaurant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	User       *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	Slug       string    `gorm:"type:varchar(200);unique;not null" json:"slug"`
	Logo       string    `gorm:"type:varchar(255)" json:"logo"`
	DistrictID *uint     `json:"district_id,omitempty"`
	District   *District `gorm:"foreignKey:DistrictID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"district,omitempty"`
	Address    string    `gorm:"type:text" json:"address"`
	IsBlocked  bool      `gorm:"default:false" json:"is_blocked"`

	Phone           string `gorm:"type:varchar(200)" json:"phone"`
	Whatsapp        string `gorm:"type:varchar(200)" json:"whatsapp"`
	WhatsappMessage string `gorm:"type:varchar(200)" json:"whatsapp_message"`
	FacebookURL     string `gorm:"type:varchar(200)" json:"facebook_url"`
	InstagramURL    string `gorm:"type:varchar(200)" json:"instagram_url"`
	YoutubeURL      string `gorm:"type:varchar(200)" json:"youtube_url"`
	TwitterURL      string `gorm:"type:varchar(200)" json:"twitter_url"`
	LocationURL     string `gorm:"type:varchar(200)" json:"location_url"`

	FeatureTitle       string `gorm:"type:varchar(200)" json:"feature_title"`
	FeatureImage       string `gorm:"type:varchar(255)" json:"feature_image"`
	FeatureDescription string `gorm:"type:text" json:"feature_description"`
	VisitorCount       uint   `gorm:"default:1" json:"visitor_count"`

	EnableSending bool `gorm:"default:false" json:"enable_sending"`
	IsBooknow     bool `gorm:"default:false" json:"is_booknow"`
	IsSocialmedia bool `gorm:"default:false" json:"is_socialmedia"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave derives the slug from the name when none was supplied.
func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	if r.Slug == "" {
		r.Slug = utils.Slugify(r.Name)
	}
	return nil
}

// OwnedBy reports whether the given user is the staff account bound to
// this restaurant.
func (r *Restaurant) OwnedBy(userID uint) bool {
	return r.UserID != nil && *r.UserID == userID
}
