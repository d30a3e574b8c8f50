package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SystemConfig is a key/value row for site-level settings the admin can edit
// (hero copy, availability banner, social links and so on).
type SystemConfig struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SiteStats is a single-row counter table updated by public traffic.
type SiteStats struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	PageViews       int64      `json:"pageViews" gorm:"default:0"`
	DiagnosticRuns  int64      `json:"diagnosticRuns" gorm:"default:0"`
	ContactMessages int64      `json:"contactMessages" gorm:"default:0"`
	HireRequests    int64      `json:"hireRequests" gorm:"default:0"`
	LastVisitAt     *time.Time `json:"lastVisitAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type Skill struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Category    string         `json:"category"` // e.g. "frontend", "backend", "devops"
	Proficiency int            `json:"proficiency" gorm:"default:0"` // 0-100
	SortOrder   int            `json:"sortOrder" gorm:"default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// JourneyPhase is one entry of the career timeline on the about page.
type JourneyPhase struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Period      string         `json:"period"` // e.g. "2021 - 2023"
	Description string         `json:"description" gorm:"type:text"`
	Highlights  pq.StringArray `json:"highlights" gorm:"type:text[]"`
	SortOrder   int            `json:"sortOrder" gorm:"default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (SystemConfig) TableName() string {
	return "system_configs"
}

func (SiteStats) TableName() string {
	return "site_stats"
}

func (Skill) TableName() string {
	return "skills"
}

func (JourneyPhase) TableName() string {
	return "journey_phases"
}

func (s *Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("skill name is required")
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return fmt.Errorf("proficiency must be between 0 and 100")
	}
	return nil
}

func (jp *JourneyPhase) Validate() error {
	if jp.Title == "" {
		return fmt.Errorf("journey phase title is required")
	}
	return nil
}
