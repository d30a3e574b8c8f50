package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type CaseStudyController struct {
	db *gorm.DB
}

func NewCaseStudyController(db *gorm.DB) *CaseStudyController {
	return &CaseStudyController{db: db}
}

// caseStudyColumns maps updatable JSON fields to their database columns.
var caseStudyColumns = map[string]string{
	"title":     "title",
	"slug":      "slug",
	"client":    "client",
	"summary":   "summary",
	"challenge": "challenge",
	"solution":  "solution",
	"outcome":   "outcome",
	"techStack": "tech_stack",
	"published": "published",
}

// ListPublished returns published case studies.
func (csc *CaseStudyController) ListPublished(c *gin.Context) {
	var studies []models.CaseStudy
	err := csc.db.Where("published = ?", true).
		Order("created_at DESC").
		Find(&studies).Error
	if err != nil {
		logger.WithError(err, "case_study_controller").Error("Failed to list case studies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list case studies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caseStudies": studies})
}

// GetPublishedBySlug returns a single published case study.
func (csc *CaseStudyController) GetPublishedBySlug(c *gin.Context) {
	var study models.CaseStudy
	err := csc.db.Where("slug = ? AND published = ?", c.Param("slug"), true).First(&study).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
			return
		}
		logger.WithError(err, "case_study_controller").Error("Failed to get case study")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get case study"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caseStudy": study})
}

// ListAll returns every case study including drafts (admin).
func (csc *CaseStudyController) ListAll(c *gin.Context) {
	var studies []models.CaseStudy
	if err := csc.db.Order("created_at DESC").Find(&studies).Error; err != nil {
		logger.WithError(err, "case_study_controller").Error("Failed to list case studies")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list case studies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caseStudies": studies})
}

// Create creates a case study (admin).
func (csc *CaseStudyController) Create(c *gin.Context) {
	var study models.CaseStudy
	if err := c.ShouldBindJSON(&study); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := study.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := csc.db.Create(&study).Error; err != nil {
		logger.WithError(err, "case_study_controller").Error("Failed to create case study")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case study"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Case study created successfully",
		"caseStudy": study,
	})
}

// Update applies partial updates to a case study (admin).
func (csc *CaseStudyController) Update(c *gin.Context) {
	studyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case study ID"})
		return
	}

	var existing models.CaseStudy
	if err := csc.db.First(&existing, uint(studyID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
			return
		}
		logger.WithError(err, "case_study_controller").Error("Failed to get case study")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get case study"})
		return
	}

	updates, err := patchColumns(c, caseStudyColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := csc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "case_study_controller").Error("Failed to update case study")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case study"})
		return
	}

	var study models.CaseStudy
	if err := csc.db.First(&study, existing.ID).Error; err != nil {
		logger.WithError(err, "case_study_controller").Error("Failed to reload case study")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case study"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Case study updated successfully",
		"caseStudy": study,
	})
}

// Delete removes a case study (admin).
func (csc *CaseStudyController) Delete(c *gin.Context) {
	studyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case study ID"})
		return
	}

	result := csc.db.Delete(&models.CaseStudy{}, uint(studyID))
	if result.Error != nil {
		logger.WithError(result.Error, "case_study_controller").Error("Failed to delete case study")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case study"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case study not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Case study deleted successfully"})
}
