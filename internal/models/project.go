package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ActiveProjectStatus string

const (
	ActiveProjectPlanning   ActiveProjectStatus = "PLANNING"
	ActiveProjectInProgress ActiveProjectStatus = "IN_PROGRESS"
	ActiveProjectReview     ActiveProjectStatus = "REVIEW"
	ActiveProjectCompleted  ActiveProjectStatus = "COMPLETED"
)

// Project is a published portfolio entry shown on the marketing site.
type Project struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	TechStack   pq.StringArray `json:"techStack" gorm:"type:text[]"`
	RepoURL     string         `json:"repoUrl"`
	LiveURL     string         `json:"liveUrl"`
	ImageURL    string         `json:"imageUrl"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	SortOrder   int            `json:"sortOrder" gorm:"default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// ActiveProject is an in-flight client engagement shown on the dashboard.
type ActiveProject struct {
	ID        uint                `json:"id" gorm:"primaryKey"`
	Name      string              `json:"name" gorm:"not null"`
	Client    string              `json:"client"`
	Status    ActiveProjectStatus `json:"status" gorm:"not null;default:'PLANNING'"`
	Progress  int                 `json:"progress" gorm:"default:0"` // 0-100
	StartedAt *time.Time          `json:"startedAt"`
	DueAt     *time.Time          `json:"dueAt"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	DeletedAt gorm.DeletedAt      `json:"-" gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

func (ActiveProject) TableName() string {
	return "active_projects"
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	if p.Slug == "" {
		return fmt.Errorf("project slug is required")
	}
	return nil
}

func (ap *ActiveProject) Validate() error {
	if ap.Name == "" {
		return fmt.Errorf("active project name is required")
	}
	if ap.Progress < 0 || ap.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}
