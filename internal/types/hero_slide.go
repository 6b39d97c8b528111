package types

import (
	"time"

	"github.com/google/uuid"
)

type HeroSlide struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ImageURL     string    `gorm:"column:image_url;not null" json:"image_url"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Subtitle     string    `gorm:"column:subtitle" json:"subtitle"`
	ButtonText   string    `gorm:"column:button_text" json:"button_text"`
	ButtonLink   string    `gorm:"column:button_link" json:"button_link"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (HeroSlide) TableName() string { return "hero_slide" }
