package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"github.com/portfolio/backend/internal/services"
	"gorm.io/gorm"
)

// LeadController handles the public lead-generation forms and their admin views.
type LeadController struct {
	db           *gorm.DB
	statsService *services.StatsService
}

func NewLeadController(db *gorm.DB, statsService *services.StatsService) *LeadController {
	return &LeadController{
		db:           db,
		statsService: statsService,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type HireRequestInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company"`
	ProjectType string `json:"projectType" binding:"required"`
	BudgetRange string `json:"budgetRange"`
	Timeline    string `json:"timeline"`
	Details     string `json:"details" binding:"required"`
}

type FeatureRequestInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Title   string `json:"title" binding:"required"`
	Details string `json:"details"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateContactMessage stores a contact form submission.
func (lc *LeadController) CreateContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.ContactMessage{
		ReferenceID: uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
	}

	if err := lc.db.Create(&message).Error; err != nil {
		logger.WithError(err, "lead_controller").Error("Failed to create contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if err := lc.statsService.Increment("contact_messages"); err != nil {
		logger.WithError(err, "lead_controller").Warn("Failed to bump contact counter")
	}

	logger.WithLead("contact", message.ReferenceID).Info("Contact message received")

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Message sent successfully",
		"referenceId": message.ReferenceID,
	})
}

// CreateHireRequest stores a hire-me form submission.
func (lc *LeadController) CreateHireRequest(c *gin.Context) {
	var req HireRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.HireRequest{
		ReferenceID: uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		BudgetRange: req.BudgetRange,
		Timeline:    req.Timeline,
		Details:     req.Details,
		Status:      models.HireRequestNew,
	}

	if err := lc.db.Create(&request).Error; err != nil {
		logger.WithError(err, "lead_controller").Error("Failed to create hire request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit hire request"})
		return
	}

	if err := lc.statsService.Increment("hire_requests"); err != nil {
		logger.WithError(err, "lead_controller").Warn("Failed to bump hire counter")
	}

	logger.WithLead("hire", request.ReferenceID).Info("Hire request received")

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Hire request submitted successfully",
		"referenceId": request.ReferenceID,
	})
}

// CreateFeatureRequest stores a site improvement suggestion.
func (lc *LeadController) CreateFeatureRequest(c *gin.Context) {
	var req FeatureRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.FeatureRequest{
		Name:    req.Name,
		Email:   req.Email,
		Title:   req.Title,
		Details: req.Details,
		Status:  models.FeatureRequestOpen,
	}

	if err := lc.db.Create(&request).Error; err != nil {
		logger.WithError(err, "lead_controller").Error("Failed to create feature request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feature request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Feature request submitted successfully",
		"featureRequest": request,
	})
}

// VoteFeatureRequest bumps the vote count on an open suggestion.
func (lc *LeadController) VoteFeatureRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature request ID"})
		return
	}

	result := lc.db.Model(&models.FeatureRequest{}).
		Where("id = ?", uint(requestID)).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to vote on feature request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// ListFeatureRequests returns open suggestions with vote counts (public).
func (lc *LeadController) ListFeatureRequests(c *gin.Context) {
	var requests []models.FeatureRequest
	err := lc.db.Order("votes DESC, created_at DESC").Find(&requests).Error
	if err != nil {
		logger.WithError(err, "lead_controller").Error("Failed to list feature requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list feature requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"featureRequests": requests})
}

// ListContactMessages returns all contact messages, newest first (admin).
func (lc *LeadController) ListContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := lc.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		logger.WithError(err, "lead_controller").Error("Failed to list contact messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contact messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkMessageRead flags a contact message as handled (admin).
func (lc *LeadController) MarkMessageRead(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	result := lc.db.Model(&models.ContactMessage{}).
		Where("id = ?", uint(messageID)).
		UpdateColumn("read", true)
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to mark message read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message read"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// DeleteContactMessage removes a contact message (admin).
func (lc *LeadController) DeleteContactMessage(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	result := lc.db.Delete(&models.ContactMessage{}, uint(messageID))
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to delete contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact message"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// ListHireRequests returns all hire requests, newest first (admin).
func (lc *LeadController) ListHireRequests(c *gin.Context) {
	var requests []models.HireRequest
	if err := lc.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		logger.WithError(err, "lead_controller").Error("Failed to list hire requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hire requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hireRequests": requests})
}

// UpdateHireRequestStatus moves a hire request through its lifecycle (admin).
func (lc *LeadController) UpdateHireRequestStatus(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hire request ID"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.HireRequestStatus(req.Status)
	switch status {
	case models.HireRequestNew, models.HireRequestReviewed, models.HireRequestAccepted, models.HireRequestDeclined:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := lc.db.Model(&models.HireRequest{}).
		Where("id = ?", uint(requestID)).
		UpdateColumn("status", status)
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to update hire request status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hire request"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hire request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hire request updated successfully"})
}

// DeleteHireRequest removes a hire request (admin).
func (lc *LeadController) DeleteHireRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hire request ID"})
		return
	}

	result := lc.db.Delete(&models.HireRequest{}, uint(requestID))
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to delete hire request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hire request"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hire request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hire request deleted successfully"})
}

// UpdateFeatureRequestStatus moves a suggestion through its lifecycle (admin).
func (lc *LeadController) UpdateFeatureRequestStatus(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature request ID"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.FeatureRequestStatus(req.Status)
	switch status {
	case models.FeatureRequestOpen, models.FeatureRequestPlanned, models.FeatureRequestShipped, models.FeatureRequestDeclined:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := lc.db.Model(&models.FeatureRequest{}).
		Where("id = ?", uint(requestID)).
		UpdateColumn("status", status)
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to update feature request status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feature request"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feature request updated successfully"})
}

// DeleteFeatureRequest removes a suggestion (admin).
func (lc *LeadController) DeleteFeatureRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feature request ID"})
		return
	}

	result := lc.db.Delete(&models.FeatureRequest{}, uint(requestID))
	if result.Error != nil {
		logger.WithError(result.Error, "lead_controller").Error("Failed to delete feature request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feature request"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feature request deleted successfully"})
}
