package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sorawit/coursereg/internal/app/controllers"
	"github.com/sorawit/coursereg/internal/app/models/dto"
	"github.com/sorawit/coursereg/internal/middleware"
	"github.com/sorawit/coursereg/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	sessionController *controllers.SessionController,
	registrationController *controllers.RegistrationController,
	faqController *controllers.FaqController,
	announcementController *controllers.AnnouncementController,
	contactController *controllers.ContactController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog and content routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		// Opening a registration session is public; the workflow itself
		// enforces the registration window.
		courses.POST("/:id/registration-sessions", sessionController.Open)
	}

	faqs := v1.Group("/faqs")
	{
		faqs.GET("", faqController.GetAllFaqs)
	}

	announcements := v1.Group("/announcements")
	{
		announcements.GET("", announcementController.GetAllAnnouncements)
	}

	v1.GET("/contact", contactController.GetContactInfo)

	// --- Registration session routes (token-addressed, public) ---
	sessions := v1.Group("/registration-sessions")
	{
		sessions.GET("/:token", sessionController.GetState)
		sessions.PATCH("/:token/draft", sessionController.PatchDraft)
		sessions.POST("/:token/next", sessionController.Next)
		sessions.POST("/:token/back", sessionController.Back)
		sessions.POST("/:token/documents", sessionController.UploadDocuments)
		sessions.POST("/:token/submit", sessionController.Submit)
		sessions.DELETE("/:token", sessionController.Close)
	}

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admin Routes Group ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired("admin"))
	{
		coursesAdmin := admin.Group("/courses")
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}

		registrations := admin.Group("/registrations")
		{
			registrations.GET("", registrationController.GetRegistrations)
			registrations.GET("/:id", registrationController.GetRegistrationByID)
			registrations.PATCH("/:id/status", registrationController.UpdateRegistrationStatus)
			registrations.DELETE("/:id", registrationController.DeleteRegistration)
		}

		faqsAdmin := admin.Group("/faqs")
		{
			faqsAdmin.POST("", faqController.CreateFaq)
			faqsAdmin.PUT("/:id", faqController.UpdateFaq)
			faqsAdmin.DELETE("/:id", faqController.DeleteFaq)
		}

		announcementsAdmin := admin.Group("/announcements")
		{
			announcementsAdmin.POST("", announcementController.CreateAnnouncement)
			announcementsAdmin.PUT("/:id", announcementController.UpdateAnnouncement)
			announcementsAdmin.DELETE("/:id", announcementController.DeleteAnnouncement)
		}

		admin.PUT("/contact", contactController.UpdateContactInfo)
	}

	// Operational endpoints
	router.GET("/metrics", metrics.Handler())
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "ok"},
			Timestamp: time.Now(),
		})
	})
}
