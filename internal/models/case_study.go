package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CaseStudy struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null"`
	Client    string         `json:"client"`
	Summary   string         `json:"summary" gorm:"type:text"`
	Challenge string         `json:"challenge" gorm:"type:text"`
	Solution  string         `json:"solution" gorm:"type:text"`
	Outcome   string         `json:"outcome" gorm:"type:text"`
	TechStack pq.StringArray `json:"techStack" gorm:"type:text[]"`
	Published bool           `json:"published" gorm:"default:false"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

func (cs *CaseStudy) Validate() error {
	if cs.Title == "" {
		return fmt.Errorf("case study title is required")
	}
	if cs.Slug == "" {
		return fmt.Errorf("case study slug is required")
	}
	return nil
}
