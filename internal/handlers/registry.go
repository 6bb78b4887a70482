package handlers

import (
	"encore_backend/internal/config"
	"encore_backend/internal/services"
	"encore_backend/internal/validator"
)

// AppHandlers holds every HTTP handler, built once at startup.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	User        *UserHandler
	Application *ApplicationHandler
	Gig         *GigHandler
	Review      *ReviewHandler
	Message     *MessageHandler
	Invitation  *InvitationHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator, cfg *config.Config) *AppHandlers {
	base := NewBaseHandler(v, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, sc.Auth),
		Profile:     NewProfileHandler(base, sc.Profile),
		User:        NewUserHandler(base, sc.User, sc.KYC),
		Application: NewApplicationHandler(base, sc.Application),
		Gig:         NewGigHandler(base, sc.Gig),
		Review:      NewReviewHandler(base, sc.Review),
		Message:     NewMessageHandler(base, sc.Message),
		Invitation:  NewInvitationHandler(base, sc.Invitation),
	}
}
