package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"github.com/portfolio/backend/internal/services"
	"gorm.io/gorm"
)

// SiteController serves the about-page reference data (skills, journey),
// site stats and the key/value system config.
type SiteController struct {
	db           *gorm.DB
	statsService *services.StatsService
}

func NewSiteController(db *gorm.DB, statsService *services.StatsService) *SiteController {
	return &SiteController{
		db:           db,
		statsService: statsService,
	}
}

type ConfigUpdateRequest struct {
	Value string `json:"value" binding:"required"`
}

// skillColumns maps updatable JSON fields to their database columns.
var skillColumns = map[string]string{
	"name":        "name",
	"category":    "category",
	"proficiency": "proficiency",
	"sortOrder":   "sort_order",
}

var journeyPhaseColumns = map[string]string{
	"title":       "title",
	"period":      "period",
	"description": "description",
	"highlights":  "highlights",
	"sortOrder":   "sort_order",
}

// ListSkills returns all skills in display order.
func (sc *SiteController) ListSkills(c *gin.Context) {
	var skills []models.Skill
	if err := sc.db.Order("sort_order ASC, name ASC").Find(&skills).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to list skills")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list skills"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// CreateSkill adds a skill (admin).
func (sc *SiteController) CreateSkill(c *gin.Context) {
	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := skill.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.db.Create(&skill).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to create skill")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

// UpdateSkill applies partial updates to a skill (admin).
func (sc *SiteController) UpdateSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	var existing models.Skill
	if err := sc.db.First(&existing, uint(skillID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
			return
		}
		logger.WithError(err, "site_controller").Error("Failed to get skill")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get skill"})
		return
	}

	updates, err := patchColumns(c, skillColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if proficiency, ok := updates["proficiency"].(float64); ok && (proficiency < 0 || proficiency > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proficiency must be between 0 and 100"})
		return
	}

	if err := sc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to update skill")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}

	var skill models.Skill
	if err := sc.db.First(&skill, existing.ID).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to reload skill")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill updated successfully",
		"skill":   skill,
	})
}

// DeleteSkill removes a skill (admin).
func (sc *SiteController) DeleteSkill(c *gin.Context) {
	skillID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	result := sc.db.Delete(&models.Skill{}, uint(skillID))
	if result.Error != nil {
		logger.WithError(result.Error, "site_controller").Error("Failed to delete skill")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

// ListJourney returns the career timeline in display order.
func (sc *SiteController) ListJourney(c *gin.Context) {
	var phases []models.JourneyPhase
	if err := sc.db.Order("sort_order ASC").Find(&phases).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to list journey phases")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journey phases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"journey": phases})
}

// CreateJourneyPhase adds a timeline entry (admin).
func (sc *SiteController) CreateJourneyPhase(c *gin.Context) {
	var phase models.JourneyPhase
	if err := c.ShouldBindJSON(&phase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := phase.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.db.Create(&phase).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to create journey phase")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journey phase"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Journey phase created successfully",
		"phase":   phase,
	})
}

// UpdateJourneyPhase applies partial updates to a timeline entry (admin).
func (sc *SiteController) UpdateJourneyPhase(c *gin.Context) {
	phaseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journey phase ID"})
		return
	}

	var existing models.JourneyPhase
	if err := sc.db.First(&existing, uint(phaseID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journey phase not found"})
			return
		}
		logger.WithError(err, "site_controller").Error("Failed to get journey phase")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get journey phase"})
		return
	}

	updates, err := patchColumns(c, journeyPhaseColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := sc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to update journey phase")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journey phase"})
		return
	}

	var phase models.JourneyPhase
	if err := sc.db.First(&phase, existing.ID).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to reload journey phase")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journey phase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Journey phase updated successfully",
		"phase":   phase,
	})
}

// DeleteJourneyPhase removes a timeline entry (admin).
func (sc *SiteController) DeleteJourneyPhase(c *gin.Context) {
	phaseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journey phase ID"})
		return
	}

	result := sc.db.Delete(&models.JourneyPhase{}, uint(phaseID))
	if result.Error != nil {
		logger.WithError(result.Error, "site_controller").Error("Failed to delete journey phase")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journey phase"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journey phase not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Journey phase deleted successfully"})
}

// GetStats returns public site counters and bumps the page-view count.
func (sc *SiteController) GetStats(c *gin.Context) {
	if err := sc.statsService.Increment("page_views"); err != nil {
		logger.WithError(err, "site_controller").Warn("Failed to bump page view counter")
	}

	stats, err := sc.statsService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get site stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Dashboard returns aggregate counts for the admin overview.
func (sc *SiteController) Dashboard(c *gin.Context) {
	counts, err := sc.statsService.DashboardCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	stats, err := sc.statsService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts": counts,
		"stats":  stats,
	})
}

// GetConfig returns a single config value by key.
func (sc *SiteController) GetConfig(c *gin.Context) {
	var config models.SystemConfig
	if err := sc.db.Where("key = ?", c.Param("key")).First(&config).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Config key not found"})
			return
		}
		logger.WithError(err, "site_controller").Error("Failed to get config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": config})
}

// ListConfig returns all config rows (admin).
func (sc *SiteController) ListConfig(c *gin.Context) {
	var configs []models.SystemConfig
	if err := sc.db.Order("key ASC").Find(&configs).Error; err != nil {
		logger.WithError(err, "site_controller").Error("Failed to list config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

// PutConfig creates or replaces a config value by key (admin).
func (sc *SiteController) PutConfig(c *gin.Context) {
	key := c.Param("key")

	var req ConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var config models.SystemConfig
	err := sc.db.Where("key = ?", key).First(&config).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		config = models.SystemConfig{Key: key, Value: req.Value}
		if err := sc.db.Create(&config).Error; err != nil {
			logger.WithError(err, "site_controller").Error("Failed to create config")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save config"})
			return
		}
	case err != nil:
		logger.WithError(err, "site_controller").Error("Failed to get config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save config"})
		return
	default:
		config.Value = req.Value
		if err := sc.db.Save(&config).Error; err != nil {
			logger.WithError(err, "site_controller").Error("Failed to update config")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save config"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Config saved successfully",
		"config":  config,
	})
}

// DeleteConfig removes a config row (admin).
func (sc *SiteController) DeleteConfig(c *gin.Context) {
	result := sc.db.Where("key = ?", c.Param("key")).Delete(&models.SystemConfig{})
	if result.Error != nil {
		logger.WithError(result.Error, "site_controller").Error("Failed to delete config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete config"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Config key not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Config deleted successfully"})
}
