package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Complexity string

const (
	ComplexityLow    Complexity = "LOW"
	ComplexityMedium Complexity = "MEDIUM"
	ComplexityHigh   Complexity = "HIGH"
)

type DiagnosticEnvironment string

const (
	EnvironmentLocal      DiagnosticEnvironment = "LOCAL"
	EnvironmentProduction DiagnosticEnvironment = "PRODUCTION"
	EnvironmentBoth       DiagnosticEnvironment = "BOTH"
)

// DiagnosticPattern is an admin-curated rule mapping keywords found in a
// visitor's bug description to a suggested diagnosis and service.
// A pattern with no keywords can never win a match.
type DiagnosticPattern struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Keywords           pq.StringArray `json:"keywords" gorm:"type:text[]"`
	PossibleCauses     pq.StringArray `json:"possibleCauses" gorm:"type:text[]"`
	DebugSteps         pq.StringArray `json:"debugSteps" gorm:"type:text[]"`
	Complexity         Complexity     `json:"complexity" gorm:"not null;default:'MEDIUM'"`
	RecommendedService string         `json:"recommendedService" gorm:"not null"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

// DiagnosticLog records a visitor submission and which pattern (if any)
// it matched, for admin review.
type DiagnosticLog struct {
	ID               uint                  `json:"id" gorm:"primaryKey"`
	ReferenceID      string                `json:"referenceId" gorm:"uniqueIndex;not null"`
	Description      string                `json:"description" gorm:"type:text;not null"`
	TechStack        string                `json:"techStack"`
	ErrorMessage     string                `json:"errorMessage" gorm:"type:text"`
	Environment      DiagnosticEnvironment `json:"environment" gorm:"default:'LOCAL'"`
	MatchedPatternID *uint                 `json:"matchedPatternId"`
	MatchedPattern   *DiagnosticPattern    `json:"matchedPattern,omitempty" gorm:"foreignKey:MatchedPatternID"`
	Matched          bool                  `json:"matched" gorm:"default:false"`
	CreatedAt        time.Time             `json:"createdAt"`
}

func (DiagnosticPattern) TableName() string {
	return "diagnostic_patterns"
}

func (DiagnosticLog) TableName() string {
	return "diagnostic_logs"
}

func (dp *DiagnosticPattern) Validate() error {
	if len(dp.Keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	if dp.RecommendedService == "" {
		return fmt.Errorf("recommended service is required")
	}
	switch dp.Complexity {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
	default:
		return fmt.Errorf("invalid complexity: %s", dp.Complexity)
	}
	return nil
}
