package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type TestimonialController struct {
	db *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{db: db}
}

// testimonialColumns maps updatable JSON fields to their database columns.
var testimonialColumns = map[string]string{
	"authorName": "author_name",
	"authorRole": "author_role",
	"company":    "company",
	"content":    "content",
	"rating":     "rating",
	"approved":   "approved",
}

type TestimonialSubmission struct {
	AuthorName string `json:"authorName" binding:"required"`
	AuthorRole string `json:"authorRole"`
	Company    string `json:"company"`
	Content    string `json:"content" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
}

// ListApproved returns approved testimonials for the marketing site.
func (tc *TestimonialController) ListApproved(c *gin.Context) {
	var testimonials []models.Testimonial
	err := tc.db.Where("approved = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		logger.WithError(err, "testimonial_controller").Error("Failed to list testimonials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list testimonials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// Submit accepts a visitor testimonial. It stays hidden until approved.
func (tc *TestimonialController) Submit(c *gin.Context) {
	var req TestimonialSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	testimonial := models.Testimonial{
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
		Company:    req.Company,
		Content:    req.Content,
		Rating:     req.Rating,
		Approved:   false,
	}

	if err := tc.db.Create(&testimonial).Error; err != nil {
		logger.WithError(err, "testimonial_controller").Error("Failed to create testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit testimonial"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Testimonial submitted for review",
		"testimonial": testimonial,
	})
}

// ListAll returns every testimonial including pending ones (admin).
func (tc *TestimonialController) ListAll(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := tc.db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		logger.WithError(err, "testimonial_controller").Error("Failed to list testimonials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list testimonials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// Approve marks a pending testimonial as publicly visible (admin).
func (tc *TestimonialController) Approve(c *gin.Context) {
	testimonialID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	var testimonial models.Testimonial
	if err := tc.db.First(&testimonial, uint(testimonialID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		logger.WithError(err, "testimonial_controller").Error("Failed to get testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get testimonial"})
		return
	}

	testimonial.Approved = true
	if err := tc.db.Save(&testimonial).Error; err != nil {
		logger.WithError(err, "testimonial_controller").Error("Failed to approve testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Testimonial approved",
		"testimonial": testimonial,
	})
}

// Update applies partial updates to a testimonial (admin).
func (tc *TestimonialController) Update(c *gin.Context) {
	testimonialID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	var existing models.Testimonial
	if err := tc.db.First(&existing, uint(testimonialID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		logger.WithError(err, "testimonial_controller").Error("Failed to get testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get testimonial"})
		return
	}

	updates, err := patchColumns(c, testimonialColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if rating, ok := updates["rating"].(float64); ok && (rating < 1 || rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	if err := tc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "testimonial_controller").Error("Failed to update testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}

	var testimonial models.Testimonial
	if err := tc.db.First(&testimonial, existing.ID).Error; err != nil {
		logger.WithError(err, "testimonial_controller").Error("Failed to reload testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Testimonial updated successfully",
		"testimonial": testimonial,
	})
}

// Delete removes a testimonial (admin).
func (tc *TestimonialController) Delete(c *gin.Context) {
	testimonialID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
		return
	}

	result := tc.db.Delete(&models.Testimonial{}, uint(testimonialID))
	if result.Error != nil {
		logger.WithError(result.Error, "testimonial_controller").Error("Failed to delete testimonial")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
