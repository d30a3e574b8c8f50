package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type ProjectController struct {
	db *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{db: db}
}

// projectColumns maps updatable JSON fields to their database columns.
var projectColumns = map[string]string{
	"title":       "title",
	"slug":        "slug",
	"description": "description",
	"techStack":   "tech_stack",
	"repoUrl":     "repo_url",
	"liveUrl":     "live_url",
	"imageUrl":    "image_url",
	"featured":    "featured",
	"sortOrder":   "sort_order",
}

var activeProjectColumns = map[string]string{
	"name":      "name",
	"client":    "client",
	"status":    "status",
	"progress":  "progress",
	"startedAt": "started_at",
	"dueAt":     "due_at",
}

// ListProjects returns all portfolio projects, featured first.
func (pc *ProjectController) ListProjects(c *gin.Context) {
	var projects []models.Project
	err := pc.db.Order("featured DESC, sort_order ASC, created_at DESC").Find(&projects).Error
	if err != nil {
		logger.WithError(err, "project_controller").Error("Failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProjectBySlug returns a single project for its public page.
func (pc *ProjectController) GetProjectBySlug(c *gin.Context) {
	var project models.Project
	if err := pc.db.Where("slug = ?", c.Param("slug")).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.WithError(err, "project_controller").Error("Failed to get project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject creates a portfolio project (admin).
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := project.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.db.Create(&project).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to create project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

// UpdateProject applies partial updates to a project (admin).
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var existing models.Project
	if err := pc.db.First(&existing, uint(projectID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.WithError(err, "project_controller").Error("Failed to get project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project"})
		return
	}

	updates, err := patchColumns(c, projectColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := pc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to update project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	var project models.Project
	if err := pc.db.First(&project, existing.ID).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to reload project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject removes a project (admin).
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	result := pc.db.Delete(&models.Project{}, uint(projectID))
	if result.Error != nil {
		logger.WithError(result.Error, "project_controller").Error("Failed to delete project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// ListActiveProjects returns current engagements.
func (pc *ProjectController) ListActiveProjects(c *gin.Context) {
	var projects []models.ActiveProject
	if err := pc.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to list active projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list active projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activeProjects": projects})
}

// CreateActiveProject creates an engagement entry (admin).
func (pc *ProjectController) CreateActiveProject(c *gin.Context) {
	var project models.ActiveProject
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if project.Status == "" {
		project.Status = models.ActiveProjectPlanning
	}

	if err := project.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.db.Create(&project).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to create active project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create active project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Active project created successfully",
		"activeProject": project,
	})
}

// UpdateActiveProject applies partial updates to an engagement (admin).
func (pc *ProjectController) UpdateActiveProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active project ID"})
		return
	}

	var existing models.ActiveProject
	if err := pc.db.First(&existing, uint(projectID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Active project not found"})
			return
		}
		logger.WithError(err, "project_controller").Error("Failed to get active project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get active project"})
		return
	}

	updates, err := patchColumns(c, activeProjectColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if progress, ok := updates["progress"].(float64); ok && (progress < 0 || progress > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 100"})
		return
	}

	if err := pc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to update active project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update active project"})
		return
	}

	var project models.ActiveProject
	if err := pc.db.First(&project, existing.ID).Error; err != nil {
		logger.WithError(err, "project_controller").Error("Failed to reload active project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update active project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Active project updated successfully",
		"activeProject": project,
	})
}

// DeleteActiveProject removes an engagement (admin).
func (pc *ProjectController) DeleteActiveProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active project ID"})
		return
	}

	result := pc.db.Delete(&models.ActiveProject{}, uint(projectID))
	if result.Error != nil {
		logger.WithError(result.Error, "project_controller").Error("Failed to delete active project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete active project"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Active project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Active project deleted successfully"})
}
