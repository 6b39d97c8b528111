package types

import (
	"time"

	"github.com/google/uuid"
)

type MediaMention struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PublicationName string    `gorm:"column:publication_name;not null" json:"publication_name"`
	LogoURL         string    `gorm:"column:logo_url" json:"logo_url"`
	ArticleURL      string    `gorm:"column:article_url" json:"article_url"`
	DisplayOrder    int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (MediaMention) TableName() string { return "media_mention" }
