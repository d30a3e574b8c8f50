package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/controllers"
	"github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/services"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize services
	statsService := services.NewStatsService(db)
	diagnosticService := services.NewDiagnosticService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	projectController := controllers.NewProjectController(db)
	blogController := controllers.NewBlogController(db)
	testimonialController := controllers.NewTestimonialController(db)
	caseStudyController := controllers.NewCaseStudyController(db)
	leadController := controllers.NewLeadController(db, statsService)
	diagnosticController := controllers.NewDiagnosticController(diagnosticService, statsService)
	siteController := controllers.NewSiteController(db, statsService)

	// API routes
	api := r.Group("/api/v1")
	{
		// Public marketing content
		api.GET("/projects", projectController.ListProjects)
		api.GET("/projects/:slug", projectController.GetProjectBySlug)
		api.GET("/active-projects", projectController.ListActiveProjects)
		api.GET("/blog", blogController.ListPublished)
		api.GET("/blog/:slug", blogController.GetPublishedBySlug)
		api.GET("/testimonials", testimonialController.ListApproved)
		api.GET("/case-studies", caseStudyController.ListPublished)
		api.GET("/case-studies/:slug", caseStudyController.GetPublishedBySlug)
		api.GET("/skills", siteController.ListSkills)
		api.GET("/journey", siteController.ListJourney)
		api.GET("/stats", siteController.GetStats)
		api.GET("/config/:key", siteController.GetConfig)

		// Lead-generation forms
		api.POST("/contact", leadController.CreateContactMessage)
		api.POST("/hire", leadController.CreateHireRequest)
		api.POST("/testimonials", testimonialController.Submit)
		api.GET("/feature-requests", leadController.ListFeatureRequests)
		api.POST("/feature-requests", leadController.CreateFeatureRequest)
		api.POST("/feature-requests/:id/vote", leadController.VoteFeatureRequest)

		// Diagnostic quiz
		api.POST("/diagnose", diagnosticController.Diagnose)

		// Admin session
		api.POST("/admin/login", authController.Login)

		// Protected admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.POST("/logout", authController.Logout)
			admin.GET("/session", authController.Session)
			admin.GET("/dashboard", siteController.Dashboard)

			// Projects
			admin.POST("/projects", projectController.CreateProject)
			admin.PATCH("/projects/:id", projectController.UpdateProject)
			admin.DELETE("/projects/:id", projectController.DeleteProject)

			// Active projects
			admin.POST("/active-projects", projectController.CreateActiveProject)
			admin.PATCH("/active-projects/:id", projectController.UpdateActiveProject)
			admin.DELETE("/active-projects/:id", projectController.DeleteActiveProject)

			// Blog
			admin.GET("/blog", blogController.ListAll)
			admin.POST("/blog", blogController.Create)
			admin.PATCH("/blog/:id", blogController.Update)
			admin.DELETE("/blog/:id", blogController.Delete)

			// Testimonials
			admin.GET("/testimonials", testimonialController.ListAll)
			admin.PATCH("/testimonials/:id", testimonialController.Update)
			admin.PATCH("/testimonials/:id/approve", testimonialController.Approve)
			admin.DELETE("/testimonials/:id", testimonialController.Delete)

			// Case studies
			admin.GET("/case-studies", caseStudyController.ListAll)
			admin.POST("/case-studies", caseStudyController.Create)
			admin.PATCH("/case-studies/:id", caseStudyController.Update)
			admin.DELETE("/case-studies/:id", caseStudyController.Delete)

			// Skills
			admin.POST("/skills", siteController.CreateSkill)
			admin.PATCH("/skills/:id", siteController.UpdateSkill)
			admin.DELETE("/skills/:id", siteController.DeleteSkill)

			// Journey
			admin.POST("/journey", siteController.CreateJourneyPhase)
			admin.PATCH("/journey/:id", siteController.UpdateJourneyPhase)
			admin.DELETE("/journey/:id", siteController.DeleteJourneyPhase)

			// Diagnostic patterns and logs
			admin.GET("/diagnostic-patterns", diagnosticController.ListPatterns)
			admin.GET("/diagnostic-patterns/:id", diagnosticController.GetPattern)
			admin.POST("/diagnostic-patterns", diagnosticController.CreatePattern)
			admin.PATCH("/diagnostic-patterns/:id", diagnosticController.UpdatePattern)
			admin.DELETE("/diagnostic-patterns/:id", diagnosticController.DeletePattern)
			admin.GET("/diagnostic-logs", diagnosticController.ListLogs)
			admin.DELETE("/diagnostic-logs/:id", diagnosticController.DeleteLog)

			// Leads
			admin.GET("/messages", leadController.ListContactMessages)
			admin.PATCH("/messages/:id/read", leadController.MarkMessageRead)
			admin.DELETE("/messages/:id", leadController.DeleteContactMessage)
			admin.GET("/hire-requests", leadController.ListHireRequests)
			admin.PATCH("/hire-requests/:id", leadController.UpdateHireRequestStatus)
			admin.DELETE("/hire-requests/:id", leadController.DeleteHireRequest)
			admin.GET("/feature-requests", leadController.ListFeatureRequests)
			admin.PATCH("/feature-requests/:id", leadController.UpdateFeatureRequestStatus)
			admin.DELETE("/feature-requests/:id", leadController.DeleteFeatureRequest)

			// System config
			admin.GET("/config", siteController.ListConfig)
			admin.PUT("/config/:key", siteController.PutConfig)
			admin.DELETE("/config/:key", siteController.DeleteConfig)
		}
	}
}
