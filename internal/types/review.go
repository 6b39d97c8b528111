package types

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	CustomerName string    `gorm:"column:customer_name;not null" json:"customer_name"`
	Rating       int       `gorm:"column:rating;not null;default:5" json:"rating"`
	ReviewText   string    `gorm:"column:review_text" json:"review_text"`
	IsVerified   bool      `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	IsPublished  bool      `gorm:"column:is_published;not null;default:false" json:"is_published"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Review) TableName() string { return "review" }
