package app

import (
	"fmt"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine
}

// New wires the whole application: config, database, repositories, services,
// handlers and routes.
func New() (*App, error) {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	auditLogRepo := repositories.NewAuditLogRepository(db)

	if err := seedFirstAdmin(userRepo, cfg); err != nil {
		return nil, err
	}

	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	mailer := email.NewProvider(cfg)

	statusPolicy := models.DefaultStatusPolicy()
	if cfg.Application.StrictTransitions {
		statusPolicy = models.StrictStatusPolicy()
	}

	// Services
	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, mailer)
	userService := services.NewUserService(userRepo, jobRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(
		applicationRepo, jobRepo, userRepo, notificationService, statusPolicy)
	reviewService := services.NewReviewService(reviewRepo, applicationRepo, userRepo)
	companyService := services.NewCompanyService(userRepo, jobRepo, reviewRepo)
	adminService := services.NewAdminService(userRepo, jobRepo, applicationRepo, auditLogRepo)

	// Handlers
	base := handlers.NewBaseHandler(validator.New())
	router := setupRouter(cfg,
		handlers.NewAuthHandler(base, authService, userRepo),
		handlers.NewUserHandler(base, userService, userRepo),
		handlers.NewJobHandler(base, jobService, applicationService, userRepo),
		handlers.NewApplicationHandler(base, applicationService, userRepo),
		handlers.NewReviewHandler(base, reviewService, userRepo),
		handlers.NewCompanyHandler(base, companyService, userRepo),
		handlers.NewNotificationHandler(base, notificationService, userRepo),
		handlers.NewAdminHandler(base, adminService, userRepo),
		handlers.NewUploadHandler(base, store, cfg, userRepo),
	)

	return &App{Config: cfg, DB: db, Router: router}, nil
}

func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	logger.Info("server listening", "addr", addr, "env", a.Config.Server.Env)
	return a.Router.Run(addr)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured")
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ExperienceEntry{},
		&models.EducationEntry{},
		&models.SavedJob{},
		&models.FollowedCompany{},
		&models.Job{},
		&models.Application{},
		&models.ApplicationStatusEvent{},
		&models.Review{},
		&models.Notification{},
		&models.AuditLog{},
	)
}

// seedFirstAdmin creates the system admin account on first boot. The account
// is flagged as a system account so no admin endpoint can touch it.
func seedFirstAdmin(userRepo repositories.UserRepository, cfg *config.Config) error {
	if cfg.Admin.SeedPassword == "" {
		logger.Warn("admin seed password not set, skipping admin seeding")
		return nil
	}

	_, err := userRepo.FindByEmail(cfg.Admin.SeedEmail)
	if err == nil {
		return nil
	}
	if err != repositories.ErrUserNotFound {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.SeedPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:           cfg.Admin.SeedEmail,
		PasswordHash:    hash,
		Role:            models.UserRoleAdmin,
		IsActive:        true,
		IsSystemAccount: true,
		FullName:        "System Administrator",
	}
	if err := userRepo.Create(admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Info("seeded system admin", "email", cfg.Admin.SeedEmail)
	return nil
}

func setupRouter(cfg *config.Config, registrars ...routes.Registrar) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	routes.Setup(router, registrars...)
	return router
}
