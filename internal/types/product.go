package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaterialTypeGold    = "gold"
	MaterialTypeDiamond = "diamond"

	Karat14K = "14K"
	Karat18K = "18K"
	Karat22K = "22K"
)

type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	Slug          string         `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Description   string         `gorm:"column:description" json:"description"`
	Price         float64        `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	SalePrice     *float64       `gorm:"column:sale_price;type:numeric(10,2)" json:"sale_price,omitempty"`
	MaterialType  string         `gorm:"column:material_type;not null;default:gold" json:"material_type"`
	Karat         string         `gorm:"column:karat;not null;default:18K" json:"karat"`
	StockQuantity int            `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	IsFeatured    bool           `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;references:ID" json:"images,omitempty"`
	Categories    []Category     `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
