package services

import (
	"encore_backend/internal/config"
	"encore_backend/internal/crypto"
	"encore_backend/internal/email"
	"encore_backend/internal/repositories"
	"encore_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories and infrastructure into the
// service layer. Built once at startup.
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	User        UserService
	Application ApplicationService
	Gig         GigService
	Review      ReviewService
	Message     MessageService
	KYC         KYCService
	Invitation  InvitationService
}

func NewServiceContainer(
	db *gorm.DB,
	cfg *config.Config,
	mailer email.Provider,
	store storage.Storage,
	encryptor *crypto.FieldEncryptor,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	appRepo := repositories.NewApplicationRepository()
	gigRepo := repositories.NewGigRepository()
	reviewRepo := repositories.NewReviewRepository()
	messageRepo := repositories.NewMessageRepository()
	verificationRepo := repositories.NewVerificationRepository()
	invitationRepo := repositories.NewInvitationRepository()

	authService := NewAuthService(db, userRepo, tokenRepo, profileRepo)

	return &ServiceContainer{
		Auth:        authService,
		Profile:     NewProfileService(db, userRepo, profileRepo, store),
		User:        NewUserService(db, userRepo),
		Application: NewApplicationService(db, appRepo, mailer, store, cfg.Email.AdminEmail),
		Gig:         NewGigService(db, gigRepo, userRepo, profileRepo),
		Review:      NewReviewService(db, reviewRepo, profileRepo, userRepo),
		Message:     NewMessageService(db, messageRepo, userRepo),
		KYC:         NewKYCService(db, verificationRepo, userRepo, encryptor),
		Invitation:  NewInvitationService(db, invitationRepo, userRepo, profileRepo, authService, mailer),
	}
}
