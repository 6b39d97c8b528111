package types

import (
	"time"

	"github.com/google/uuid"
)

// At most one image per product carries IsPrimary=true; a partial unique
// index on (product_id) WHERE is_primary enforces it at the store.
type ProductImage struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	ImageURL     string    `gorm:"column:image_url;not null" json:"image_url"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsPrimary    bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProductImage) TableName() string { return "product_image" }
