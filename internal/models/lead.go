package models

import (
	"time"

	"gorm.io/gorm"
)

type HireRequestStatus string

const (
	HireRequestNew      HireRequestStatus = "NEW"
	HireRequestReviewed HireRequestStatus = "REVIEWED"
	HireRequestAccepted HireRequestStatus = "ACCEPTED"
	HireRequestDeclined HireRequestStatus = "DECLINED"
)

type FeatureRequestStatus string

const (
	FeatureRequestOpen     FeatureRequestStatus = "OPEN"
	FeatureRequestPlanned  FeatureRequestStatus = "PLANNED"
	FeatureRequestShipped  FeatureRequestStatus = "SHIPPED"
	FeatureRequestDeclined FeatureRequestStatus = "DECLINED"
)

// ContactMessage is a visitor-submitted contact form entry.
type ContactMessage struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ReferenceID string         `json:"referenceId" gorm:"uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"not null"`
	Subject     string         `json:"subject"`
	Message     string         `json:"message" gorm:"type:text;not null"`
	Read        bool           `json:"read" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// HireRequest is a visitor-submitted hire-me form entry.
type HireRequest struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	ReferenceID string            `json:"referenceId" gorm:"uniqueIndex;not null"`
	Name        string            `json:"name" gorm:"not null"`
	Email       string            `json:"email" gorm:"not null"`
	Company     string            `json:"company"`
	ProjectType string            `json:"projectType"`
	BudgetRange string            `json:"budgetRange"`
	Timeline    string            `json:"timeline"`
	Details     string            `json:"details" gorm:"type:text"`
	Status      HireRequestStatus `json:"status" gorm:"not null;default:'NEW'"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt    `json:"-" gorm:"index"`
}

// FeatureRequest is a visitor suggestion for the site itself.
type FeatureRequest struct {
	ID        uint                 `json:"id" gorm:"primaryKey"`
	Name      string               `json:"name" gorm:"not null"`
	Email     string               `json:"email"`
	Title     string               `json:"title" gorm:"not null"`
	Details   string               `json:"details" gorm:"type:text"`
	Status    FeatureRequestStatus `json:"status" gorm:"not null;default:'OPEN'"`
	Votes     int                  `json:"votes" gorm:"default:0"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	DeletedAt gorm.DeletedAt       `json:"-" gorm:"index"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (HireRequest) TableName() string {
	return "hire_requests"
}

func (FeatureRequest) TableName() string {
	return "feature_requests"
}
