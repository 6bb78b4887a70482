package app

import (
	"fmt"

	"encore_backend/database"
	"encore_backend/internal/auth"
	"encore_backend/internal/config"
	"encore_backend/internal/crypto"
	"encore_backend/internal/email"
	"encore_backend/internal/handlers"
	"encore_backend/internal/logger"
	"encore_backend/internal/middleware"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/routes"
	"encore_backend/internal/services"
	"encore_backend/internal/storage"
	"encore_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := repositories.NewRefreshTokenRepository().DeleteExpired(gormDB); err != nil {
		logger.Warn("Failed to purge expired refresh tokens", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, buildMailer(cfg))

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// buildMailer selects the outgoing mail provider: the in-memory
// recorder in the test environment, SMTP everywhere else.
func buildMailer(cfg *config.Config) email.Provider {
	if cfg.Server.Env == "test" {
		return NewMockEmailProvider()
	}

	templates := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := templates.LoadDir(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Custom email templates not loaded, using builtins", "dir", cfg.Email.TemplatesDir, "error", err)
		}
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, templates)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, mailer email.Provider) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	encryptor, err := crypto.NewFieldEncryptor(cfg.Encryption.Key)
	if err != nil {
		logger.Fatal("Failed to initialize field encryptor", "error", err)
	}

	serviceContainer := services.NewServiceContainer(gormDB, cfg, mailer, storageInstance, encryptor)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), cfg)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// SeedFirstAdmin creates the bootstrap admin account when configured
// and no admin exists yet. Later admins join through invitations.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin seed credentials not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	return db.Transaction(func(tx *gorm.DB) error {
		admins, err := userRepo.CountByRole(tx, models.UserRoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to count admin users: %w", err)
		}
		if admins > 0 {
			logger.Info("Admin user already exists. Skipping creation.")
			return nil
		}

		logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &models.User{
			Email:        adminEmail,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusActive,
			IsVerified:   true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		profile := &models.AdminProfile{
			UserID:   admin.ID,
			FullName: cfg.Admin.FullName,
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}

		logger.Info("First admin created", "user_id", admin.ID)
		return nil
	})
}
