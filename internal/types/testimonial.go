package types

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerName    string    `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerTitle   string    `gorm:"column:customer_title" json:"customer_title"`
	Rating          int       `gorm:"column:rating;not null;default:5" json:"rating"`
	TestimonialText string    `gorm:"column:testimonial_text;not null" json:"testimonial_text"`
	IsFeatured      bool      `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsPublished     bool      `gorm:"column:is_published;not null;default:true" json:"is_published"`
	DisplayOrder    int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonial" }
