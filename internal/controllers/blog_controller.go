package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type BlogController struct {
	db *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{db: db}
}

// blogPostColumns maps updatable JSON fields to their database columns.
var blogPostColumns = map[string]string{
	"title":       "title",
	"slug":        "slug",
	"excerpt":     "excerpt",
	"content":     "content",
	"tags":        "tags",
	"coverImage":  "cover_image",
	"published":   "published",
	"publishedAt": "published_at",
}

// ListPublished returns published posts, newest first.
func (bc *BlogController) ListPublished(c *gin.Context) {
	var posts []models.BlogPost
	err := bc.db.Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		logger.WithError(err, "blog_controller").Error("Failed to list blog posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPublishedBySlug returns a single published post.
func (bc *BlogController) GetPublishedBySlug(c *gin.Context) {
	var post models.BlogPost
	err := bc.db.Where("slug = ? AND published = ?", c.Param("slug"), true).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		logger.WithError(err, "blog_controller").Error("Failed to get blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// ListAll returns every post including drafts (admin).
func (bc *BlogController) ListAll(c *gin.Context) {
	var posts []models.BlogPost
	if err := bc.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		logger.WithError(err, "blog_controller").Error("Failed to list blog posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Create creates a post (admin). Publishing stamps published_at.
func (bc *BlogController) Create(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := post.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := bc.db.Create(&post).Error; err != nil {
		logger.WithError(err, "blog_controller").Error("Failed to create blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog post created successfully",
		"post":    post,
	})
}

// Update applies partial updates to a post (admin).
func (bc *BlogController) Update(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var existing models.BlogPost
	if err := bc.db.First(&existing, uint(postID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		logger.WithError(err, "blog_controller").Error("Failed to get blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get blog post"})
		return
	}

	updates, err := patchColumns(c, blogPostColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// First publish stamps the timestamp
	if published, ok := updates["published"].(bool); ok && published && !existing.Published {
		if _, has := updates["published_at"]; !has {
			updates["published_at"] = time.Now()
		}
	}

	if err := bc.db.Model(&existing).Updates(updates).Error; err != nil {
		logger.WithError(err, "blog_controller").Error("Failed to update blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}

	var post models.BlogPost
	if err := bc.db.First(&post, existing.ID).Error; err != nil {
		logger.WithError(err, "blog_controller").Error("Failed to reload blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog post updated successfully",
		"post":    post,
	})
}

// Delete removes a post (admin).
func (bc *BlogController) Delete(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	result := bc.db.Delete(&models.BlogPost{}, uint(postID))
	if result.Error != nil {
		logger.WithError(result.Error, "blog_controller").Error("Failed to delete blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
