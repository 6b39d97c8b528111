package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryTypeType        = "type"
	CategoryTypeKarat       = "karat"
	CategoryTypeOccasion    = "occasion"
	CategoryTypeDiamondType = "diamond_type"
)

type Category struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Slug           string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	ParentCategory string    `gorm:"column:parent_category" json:"parent_category"`
	CategoryType   string    `gorm:"column:category_type;not null;default:type" json:"category_type"`
	MaterialType   string    `gorm:"column:material_type;not null;default:gold" json:"material_type"`
	DisplayOrder   int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Products       []Product `gorm:"many2many:product_categories;" json:"products,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Category) TableName() string { return "category" }
