// Package bootstrap wires configuration, logging, repositories, services,
// controllers and routes into a runnable application.
package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sorawit/coursereg/internal/app/controllers"
	appRepos "github.com/sorawit/coursereg/internal/app/repositories"
	appRoutes "github.com/sorawit/coursereg/internal/app/routes"
	appServices "github.com/sorawit/coursereg/internal/app/services"
	"github.com/sorawit/coursereg/internal/config"
	appMiddleware "github.com/sorawit/coursereg/internal/middleware"
	pkgAuth "github.com/sorawit/coursereg/internal/pkg/auth"
	"github.com/sorawit/coursereg/internal/pkg/document"
	"github.com/sorawit/coursereg/internal/pkg/email"
	"github.com/sorawit/coursereg/internal/pkg/logger"
	"github.com/sorawit/coursereg/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	CourseService       appServices.CourseService
	RegistrationService appServices.RegistrationService
	SessionService      appServices.SessionService
	FaqService          appServices.FaqService
	AnnouncementService appServices.AnnouncementService
	ContactService      appServices.ContactService

	AuthController         *appControllers.AuthController
	CourseController       *appControllers.CourseController
	SessionController      *appControllers.SessionController
	RegistrationController *appControllers.RegistrationController
	FaqController          *appControllers.FaqController
	AnnouncementController *appControllers.AnnouncementController
	ContactController      *appControllers.ContactController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A local .env file overrides nothing but seeds the process environment.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	if cfg.Registration.SeedData {
		seed.CreateDefaultData(deps.Repos, lgr)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService, err := appServices.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, deps.JWTService, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth service: %w", err)
	}
	deps.AuthService = authService

	renderer, err := document.NewRenderer(lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to build document renderer: %w", err)
	}

	mailer := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, nil, lgr)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.Registrations, deps.Repos.Courses, nil, lgr)
	deps.SessionService = appServices.NewSessionService(
		deps.Repos.Courses,
		deps.RegistrationService,
		renderer,
		mailer,
		nil,
		cfg.AutoCloseDelay(),
		lgr,
	)
	deps.FaqService = appServices.NewFaqService(deps.Repos.Faqs, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.Announcements, lgr)
	deps.ContactService = appServices.NewContactService(deps.Repos.Contact, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.FaqController = appControllers.NewFaqController(deps.FaqService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterCustomValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.SessionController,
		deps.RegistrationController,
		deps.FaqController,
		deps.AnnouncementController,
		deps.ContactController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
