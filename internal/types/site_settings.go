package types

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings is a singleton row with upsert semantics.
type SiteSettings struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BrandName       string    `gorm:"column:brand_name;not null" json:"brand_name"`
	HeroHeadline    string    `gorm:"column:hero_headline" json:"hero_headline"`
	HeroSubheadline string    `gorm:"column:hero_subheadline" json:"hero_subheadline"`
	AboutHeadline   string    `gorm:"column:about_headline" json:"about_headline"`
	AboutContent    string    `gorm:"column:about_content" json:"about_content"`
	FounderNote     string    `gorm:"column:founder_note" json:"founder_note"`
	PhoneNumber     string    `gorm:"column:phone_number" json:"phone_number"`
	EmailAddress    string    `gorm:"column:email_address" json:"email_address"`
	ShowroomAddress string    `gorm:"column:showroom_address" json:"showroom_address"`
	OperatingHours  string    `gorm:"column:operating_hours" json:"operating_hours"`
	InstagramURL    string    `gorm:"column:instagram_url" json:"instagram_url"`
	FacebookURL     string    `gorm:"column:facebook_url" json:"facebook_url"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }
