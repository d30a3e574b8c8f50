package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Testimonial holds both admin-curated and visitor-submitted quotes.
// Visitor submissions start unapproved and are hidden until reviewed.
type Testimonial struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	AuthorName string         `json:"authorName" gorm:"not null"`
	AuthorRole string         `json:"authorRole"`
	Company    string         `json:"company"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	Rating     int            `json:"rating" gorm:"default:5"` // 1-5
	AvatarURL  string         `json:"avatarUrl"`
	Approved   bool           `json:"approved" gorm:"default:false"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

func (t *Testimonial) Validate() error {
	if t.AuthorName == "" {
		return fmt.Errorf("testimonial author name is required")
	}
	if t.Content == "" {
		return fmt.Errorf("testimonial content is required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
