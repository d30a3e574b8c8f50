package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// DiagnosticSubmission is the visitor-supplied input to the matcher.
// Description is the primary signal; tech stack and error message are folded
// into the same searchable text. Environment never affects scoring.
type DiagnosticSubmission struct {
	Description  string                       `json:"description"`
	TechStack    string                       `json:"techStack"`
	ErrorMessage string                       `json:"errorMessage"`
	Environment  models.DiagnosticEnvironment `json:"environment"`
}

// DiagnosticResult is what the visitor gets back.
type DiagnosticResult struct {
	PossibleCauses     []string                     `json:"possibleCauses"`
	DebugSteps         []string                     `json:"debugSteps"`
	Complexity         models.Complexity            `json:"complexity"`
	RecommendedService string                       `json:"recommendedService"`
	IsMatch            bool                         `json:"isMatch"`
	Environment        models.DiagnosticEnvironment `json:"environment"`
}

// Scorer rates how well a pattern fits the normalized submission text.
// Swapping in a smarter scorer must not change the Match contract.
type Scorer interface {
	Score(pattern models.DiagnosticPattern, text string) int
}

// SubstringScorer counts how many of a pattern's keywords occur as
// case-insensitive substrings of the text. No word-boundary requirement.
type SubstringScorer struct{}

func (SubstringScorer) Score(pattern models.DiagnosticPattern, text string) int {
	count := 0
	for _, keyword := range pattern.Keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}

// Fallback returned when no pattern matches, including the empty pattern set.
var (
	fallbackCauses = []string{
		"The issue may be specific to your setup or a less common failure mode",
		"A recent dependency or environment change could be involved",
		"The error may originate in a layer other than where it surfaces",
	}
	fallbackSteps = []string{
		"Reproduce the issue with a minimal example",
		"Check browser/server logs for the first error, not the last",
		"Diff recent changes (code, config, dependencies) against a known-good state",
		"Verify environment variables and third-party service status",
	}
	fallbackService = "Bug Fixing & Error Resolution"
)

// FallbackResult returns the fixed generic template with the submission's
// environment carried through.
func FallbackResult(env models.DiagnosticEnvironment) DiagnosticResult {
	return DiagnosticResult{
		PossibleCauses:     append([]string(nil), fallbackCauses...),
		DebugSteps:         append([]string(nil), fallbackSteps...),
		Complexity:         models.ComplexityMedium,
		RecommendedService: fallbackService,
		IsMatch:            false,
		Environment:        env,
	}
}

// NormalizeSubmission folds the searchable fields into one lower-case string.
func NormalizeSubmission(submission DiagnosticSubmission) string {
	return strings.ToLower(strings.Join([]string{
		submission.Description,
		submission.TechStack,
		submission.ErrorMessage,
	}, " "))
}

// Match selects the single best-matching pattern for a submission, or the
// generic fallback when nothing matches. It is a pure function of
// (patterns, submission): deterministic, no mutation, no I/O. Ties on match
// count are broken by the first pattern encountered, so the caller's slice
// order (storage order) decides.
func Match(patterns []models.DiagnosticPattern, submission DiagnosticSubmission) (DiagnosticResult, *models.DiagnosticPattern) {
	return MatchWith(SubstringScorer{}, patterns, submission)
}

// MatchWith runs the match with an explicit scorer.
func MatchWith(scorer Scorer, patterns []models.DiagnosticPattern, submission DiagnosticSubmission) (DiagnosticResult, *models.DiagnosticPattern) {
	text := NormalizeSubmission(submission)

	bestCount := 0
	var best *models.DiagnosticPattern
	for i := range patterns {
		count := scorer.Score(patterns[i], text)
		if count > bestCount {
			bestCount = count
			best = &patterns[i]
		}
	}

	if best == nil {
		return FallbackResult(submission.Environment), nil
	}

	return DiagnosticResult{
		PossibleCauses:     append([]string(nil), best.PossibleCauses...),
		DebugSteps:         append([]string(nil), best.DebugSteps...),
		Complexity:         best.Complexity,
		RecommendedService: best.RecommendedService,
		IsMatch:            true,
		Environment:        submission.Environment,
	}, best
}

type DiagnosticService struct {
	db     *gorm.DB
	scorer Scorer
}

func NewDiagnosticService(db *gorm.DB) *DiagnosticService {
	return &DiagnosticService{
		db:     db,
		scorer: SubstringScorer{},
	}
}

// Diagnose evaluates a submission against the stored pattern set, logs the
// submission for admin review and bumps the run counter. The log write is
// best effort: a failure there is logged, not returned.
func (ds *DiagnosticService) Diagnose(submission DiagnosticSubmission) (DiagnosticResult, error) {
	var patterns []models.DiagnosticPattern
	// Insertion order keeps the tie-break stable
	if err := ds.db.Order("id ASC").Find(&patterns).Error; err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to load diagnostic patterns")
		return DiagnosticResult{}, fmt.Errorf("failed to load diagnostic patterns: %w", err)
	}

	result, matched := MatchWith(ds.scorer, patterns, submission)

	referenceID := uuid.NewString()
	entry := models.DiagnosticLog{
		ReferenceID:  referenceID,
		Description:  submission.Description,
		TechStack:    submission.TechStack,
		ErrorMessage: submission.ErrorMessage,
		Environment:  submission.Environment,
		Matched:      result.IsMatch,
	}
	if matched != nil {
		entry.MatchedPatternID = &matched.ID
	}

	if err := ds.db.Create(&entry).Error; err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to write diagnostic log")
	} else {
		logger.WithDiagnostic(referenceID).Info("Diagnostic submission evaluated", map[string]interface{}{
			"matched":  result.IsMatch,
			"patterns": len(patterns),
		})
	}

	return result, nil
}

// CreatePattern validates and stores a new diagnostic pattern.
func (ds *DiagnosticService) CreatePattern(pattern *models.DiagnosticPattern) error {
	if err := pattern.Validate(); err != nil {
		return fmt.Errorf("diagnostic pattern validation failed: %w", err)
	}
	if err := ds.db.Create(pattern).Error; err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to create diagnostic pattern")
		return fmt.Errorf("failed to create diagnostic pattern: %w", err)
	}
	return nil
}

// GetPatterns returns all patterns in storage order.
func (ds *DiagnosticService) GetPatterns() ([]models.DiagnosticPattern, error) {
	var patterns []models.DiagnosticPattern
	if err := ds.db.Order("id ASC").Find(&patterns).Error; err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to get diagnostic patterns")
		return nil, fmt.Errorf("failed to get diagnostic patterns: %w", err)
	}
	return patterns, nil
}

// GetPattern returns a single pattern by id.
func (ds *DiagnosticService) GetPattern(patternID uint) (*models.DiagnosticPattern, error) {
	var pattern models.DiagnosticPattern
	if err := ds.db.First(&pattern, patternID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("diagnostic pattern not found")
		}
		logger.WithError(err, "diagnostic_service").Error("Failed to get diagnostic pattern")
		return nil, fmt.Errorf("failed to get diagnostic pattern: %w", err)
	}
	return &pattern, nil
}

// UpdatePattern replaces the editable fields of an existing pattern.
func (ds *DiagnosticService) UpdatePattern(patternID uint, updates *models.DiagnosticPattern) error {
	var existing models.DiagnosticPattern
	if err := ds.db.First(&existing, patternID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("diagnostic pattern not found")
		}
		logger.WithError(err, "diagnostic_service").Error("Failed to get diagnostic pattern")
		return fmt.Errorf("failed to get diagnostic pattern: %w", err)
	}

	if err := updates.Validate(); err != nil {
		return fmt.Errorf("diagnostic pattern validation failed: %w", err)
	}

	existing.Keywords = updates.Keywords
	existing.PossibleCauses = updates.PossibleCauses
	existing.DebugSteps = updates.DebugSteps
	existing.Complexity = updates.Complexity
	existing.RecommendedService = updates.RecommendedService

	if err := ds.db.Save(&existing).Error; err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to update diagnostic pattern")
		return fmt.Errorf("failed to update diagnostic pattern: %w", err)
	}
	return nil
}

// DeletePattern removes a pattern.
func (ds *DiagnosticService) DeletePattern(patternID uint) error {
	var pattern models.DiagnosticPattern
	if err := ds.db.First(&pattern, patternID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("diagnostic pattern not found")
		}
		logger.WithError(err, "diagnostic_service").Error("Failed to get diagnostic pattern")
		return fmt.Errorf("failed to get diagnostic pattern: %w", err)
	}
	if err := ds.db.Delete(&pattern).Error; err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to delete diagnostic pattern")
		return fmt.Errorf("failed to delete diagnostic pattern: %w", err)
	}
	return nil
}

// GetLogs returns recorded submissions, newest first.
func (ds *DiagnosticService) GetLogs(limit int) ([]models.DiagnosticLog, error) {
	limit = clampLogLimit(limit)
	var logs []models.DiagnosticLog
	err := ds.db.Preload("MatchedPattern").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		logger.WithError(err, "diagnostic_service").Error("Failed to get diagnostic logs")
		return nil, fmt.Errorf("failed to get diagnostic logs: %w", err)
	}
	return logs, nil
}

// clampLogLimit defaults an unset page size and caps oversized ones.
func clampLogLimit(limit int) int {
	switch {
	case limit <= 0:
		return 100
	case limit > 500:
		return 500
	default:
		return limit
	}
}

// DeleteLog removes a recorded submission.
func (ds *DiagnosticService) DeleteLog(logID uint) error {
	result := ds.db.Delete(&models.DiagnosticLog{}, logID)
	if result.Error != nil {
		logger.WithError(result.Error, "diagnostic_service").Error("Failed to delete diagnostic log")
		return fmt.Errorf("failed to delete diagnostic log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("diagnostic log not found")
	}
	return nil
}
