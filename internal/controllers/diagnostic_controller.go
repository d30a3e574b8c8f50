package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"github.com/portfolio/backend/internal/services"
)

type DiagnosticController struct {
	diagnosticService *services.DiagnosticService
	statsService      *services.StatsService
}

func NewDiagnosticController(diagnosticService *services.DiagnosticService, statsService *services.StatsService) *DiagnosticController {
	return &DiagnosticController{
		diagnosticService: diagnosticService,
		statsService:      statsService,
	}
}

type DiagnoseRequest struct {
	Description  string `json:"description" binding:"required"`
	TechStack    string `json:"techStack"`
	ErrorMessage string `json:"errorMessage"`
	Environment  string `json:"environment"`
}

// Diagnose runs a visitor's bug description through the pattern matcher.
func (dc *DiagnosticController) Diagnose(c *gin.Context) {
	var req DiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env := models.DiagnosticEnvironment(strings.ToUpper(req.Environment))
	switch env {
	case models.EnvironmentLocal, models.EnvironmentProduction, models.EnvironmentBoth:
	default:
		env = models.EnvironmentLocal
	}

	submission := services.DiagnosticSubmission{
		Description:  req.Description,
		TechStack:    req.TechStack,
		ErrorMessage: req.ErrorMessage,
		Environment:  env,
	}

	result, err := dc.diagnosticService.Diagnose(submission)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze the problem"})
		return
	}

	if err := dc.statsService.Increment("diagnostic_runs"); err != nil {
		logger.WithError(err, "diagnostic_controller").Warn("Failed to bump diagnostic counter")
	}

	c.JSON(http.StatusOK, result)
}

// ListPatterns returns all diagnostic patterns (admin).
func (dc *DiagnosticController) ListPatterns(c *gin.Context) {
	patterns, err := dc.diagnosticService.GetPatterns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list diagnostic patterns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

// GetPattern returns a single diagnostic pattern (admin).
func (dc *DiagnosticController) GetPattern(c *gin.Context) {
	patternID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pattern ID"})
		return
	}

	pattern, err := dc.diagnosticService.GetPattern(uint(patternID))
	if err != nil {
		if err.Error() == "diagnostic pattern not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diagnostic pattern not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get diagnostic pattern"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"pattern": pattern})
}

// CreatePattern stores a new diagnostic pattern (admin).
func (dc *DiagnosticController) CreatePattern(c *gin.Context) {
	var pattern models.DiagnosticPattern
	if err := c.ShouldBindJSON(&pattern); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := dc.diagnosticService.CreatePattern(&pattern); err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create diagnostic pattern"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Diagnostic pattern created successfully",
		"pattern": pattern,
	})
}

// UpdatePattern replaces a diagnostic pattern's fields (admin).
func (dc *DiagnosticController) UpdatePattern(c *gin.Context) {
	patternID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pattern ID"})
		return
	}

	var updates models.DiagnosticPattern
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := dc.diagnosticService.UpdatePattern(uint(patternID), &updates); err != nil {
		switch {
		case err.Error() == "diagnostic pattern not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Diagnostic pattern not found"})
		case strings.Contains(err.Error(), "validation failed"):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update diagnostic pattern"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diagnostic pattern updated successfully"})
}

// DeletePattern removes a diagnostic pattern (admin).
func (dc *DiagnosticController) DeletePattern(c *gin.Context) {
	patternID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pattern ID"})
		return
	}

	if err := dc.diagnosticService.DeletePattern(uint(patternID)); err != nil {
		if err.Error() == "diagnostic pattern not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diagnostic pattern not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete diagnostic pattern"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diagnostic pattern deleted successfully"})
}

// ListLogs returns recorded visitor submissions (admin).
func (dc *DiagnosticController) ListLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := dc.diagnosticService.GetLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list diagnostic logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DeleteLog removes a recorded submission (admin).
func (dc *DiagnosticController) DeleteLog(c *gin.Context) {
	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log ID"})
		return
	}

	if err := dc.diagnosticService.DeleteLog(uint(logID)); err != nil {
		if err.Error() == "diagnostic log not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diagnostic log not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete diagnostic log"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diagnostic log deleted successfully"})
}
