package types

import (
	"time"

	"github.com/google/uuid"
)

// Rows are produced by the public contact form; the admin only reads
// them and flips IsRead.
type ContactSubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	FileURL   string    `gorm:"column:file_url" json:"file_url"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ContactSubmission) TableName() string { return "contact_submission" }
