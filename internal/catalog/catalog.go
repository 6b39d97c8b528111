// Package catalog holds the shop listing pipeline: the denormalized
// product view fetched for the storefront and the pure filter/sort
// transform applied to it.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is the denormalized row shown on the shop listing: one
// product joined to its primary image and first category name.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Price     float64   `json:"price"`
	SalePrice *float64  `json:"sale_price,omitempty"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Material  string    `json:"material"`
	Karat     string    `json:"karat"`
	CreatedAt time.Time `json:"created_at"`
}

// EffectivePrice is the sale price when set, otherwise the listed
// price. Filtering, sorting and display all use it.
func EffectivePrice(p Product) float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// FilterAll matches every value of a dimension.
const FilterAll = "all"

// Filters is one conjunctive filter set. Category/Material/Karat match
// any value when empty or "all"; MaxPrice <= 0 means unbounded.
type Filters struct {
	Category string  `json:"category"`
	Material string  `json:"material"`
	Karat    string  `json:"karat"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// ParseSortKey maps a query value onto a known sort key, falling back
// to featured (fetch order) for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortName:
		return SortKey(s)
	default:
		return SortFeatured
	}
}
