package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt     string         `json:"excerpt" gorm:"type:text"`
	Content     string         `json:"content" gorm:"type:text"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	CoverImage  string         `json:"coverImage"`
	Published   bool           `json:"published" gorm:"default:false"`
	PublishedAt *time.Time     `json:"publishedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

func (bp *BlogPost) Validate() error {
	if bp.Title == "" {
		return fmt.Errorf("blog post title is required")
	}
	if bp.Slug == "" {
		return fmt.Errorf("blog post slug is required")
	}
	return nil
}
