package types

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Slug         string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Description  string    `gorm:"column:description" json:"description"`
	ImageURL     string    `gorm:"column:image_url" json:"image_url"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Collection) TableName() string { return "collection" }
