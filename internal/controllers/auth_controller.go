package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/logger"
	"github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Admin     models.Admin `json:"admin"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Login verifies admin credentials and sets the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := ac.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expiresAt, err := middleware.GenerateSessionToken(admin.ID, admin.Email)
	if err != nil {
		logger.WithError(err, "auth_controller").Error("Failed to generate session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := ac.db.Save(&admin).Error; err != nil {
		logger.WithError(err, "auth_controller").Warn("Failed to record last login")
	}

	secure := os.Getenv("ENV") != "local" && os.Getenv("ENV") != ""
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(middleware.SessionLifetime.Seconds()),
		"/",
		"",
		secure,
		true,
	)

	logger.WithAdmin(admin.ID).Info("Admin logged in")

	c.JSON(http.StatusOK, SessionResponse{
		Success:   true,
		Message:   "Login successful",
		Admin:     admin,
		ExpiresAt: expiresAt,
	})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// Session returns the admin for the current session cookie.
func (ac *AuthController) Session(c *gin.Context) {
	adminID, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var admin models.Admin
	if err := ac.db.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": admin,
	})
}
