package services

import (
	"fmt"
	"time"

	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetStats returns the counter row, creating it on first use.
func (ss *StatsService) GetStats() (*models.SiteStats, error) {
	var stats models.SiteStats
	if err := ss.db.First(&stats).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.WithError(err, "stats_service").Error("Failed to get site stats")
			return nil, fmt.Errorf("failed to get site stats: %w", err)
		}
		if err := ss.db.Create(&stats).Error; err != nil {
			logger.WithError(err, "stats_service").Error("Failed to create site stats row")
			return nil, fmt.Errorf("failed to create site stats row: %w", err)
		}
	}
	return &stats, nil
}

// Increment bumps a single counter column. Counter updates are best effort:
// callers log failures and carry on serving the request.
func (ss *StatsService) Increment(column string) error {
	stats, err := ss.GetStats()
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		column:       gorm.Expr(column+" + ?", 1),
		"updated_at": time.Now(),
	}
	if column == "page_views" {
		updates["last_visit_at"] = time.Now()
	}

	if err := ss.db.Model(&models.SiteStats{}).Where("id = ?", stats.ID).UpdateColumns(updates).Error; err != nil {
		logger.WithError(err, "stats_service").Error("Failed to increment site stat")
		return fmt.Errorf("failed to increment site stat %s: %w", column, err)
	}
	return nil
}

// DashboardCounts aggregates per-entity row counts for the admin dashboard.
func (ss *StatsService) DashboardCounts() (map[string]int64, error) {
	counts := make(map[string]int64)

	tables := map[string]interface{}{
		"projects":            &models.Project{},
		"activeProjects":      &models.ActiveProject{},
		"blogPosts":           &models.BlogPost{},
		"testimonials":        &models.Testimonial{},
		"pendingTestimonials": &models.Testimonial{},
		"contactMessages":     &models.ContactMessage{},
		"unreadMessages":      &models.ContactMessage{},
		"hireRequests":        &models.HireRequest{},
		"featureRequests":     &models.FeatureRequest{},
		"caseStudies":         &models.CaseStudy{},
		"diagnosticPatterns":  &models.DiagnosticPattern{},
		"diagnosticLogs":      &models.DiagnosticLog{},
		"skills":              &models.Skill{},
		"journeyPhases":       &models.JourneyPhase{},
	}

	for key, model := range tables {
		var count int64
		query := ss.db.Model(model)
		switch key {
		case "pendingTestimonials":
			query = query.Where("approved = ?", false)
		case "unreadMessages":
			query = query.Where("read = ?", false)
		}
		if err := query.Count(&count).Error; err != nil {
			logger.WithError(err, "stats_service").Error("Failed to count dashboard entity")
			return nil, fmt.Errorf("failed to count %s: %w", key, err)
		}
		counts[key] = count
	}

	return counts, nil
}
