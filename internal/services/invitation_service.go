package services

import (
	"context"
	"time"

	"encore_backend/internal/auth"
	"encore_backend/internal/email"
	"encore_backend/internal/logger"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invitationTTL = 7 * 24 * time.Hour

type InvitationService interface {
	Create(ctx context.Context, inviterID string, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	List(ctx context.Context, page, pageSize int) (*dto.InvitationListResponse, error)
	// Accept redeems an invitation token and creates the admin
	// account with its profile.
	Accept(ctx context.Context, req *dto.AcceptInvitationRequest) (*dto.LoginResponse, error)
}

type InvitationServiceImpl struct {
	db             *gorm.DB
	invitationRepo repositories.InvitationRepository
	userRepo       repositories.UserRepository
	profileRepo    repositories.ProfileRepository
	authService    AuthService
	mailer         email.Provider
}

func NewInvitationService(
	db *gorm.DB,
	invitationRepo repositories.InvitationRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	authService AuthService,
	mailer email.Provider,
) InvitationService {
	return &InvitationServiceImpl{
		db:             db,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		authService:    authService,
		mailer:         mailer,
	}
}

func (s *InvitationServiceImpl) Create(ctx context.Context, inviterID string, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if _, err := s.userRepo.FindByEmail(s.db.WithContext(ctx), req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	inv := &models.AdminInvitation{
		Email:     req.Email,
		Token:     uuid.NewString(),
		InvitedBy: inviterID,
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	if err := s.invitationRepo.Create(s.db.WithContext(ctx), inv); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "admin invitation created", "invitation_id", inv.ID, "email", inv.Email)

	err := s.mailer.SendTemplate(
		[]string{inv.Email},
		"Encore admin invitation",
		"admin_invitation",
		email.TemplateData{
			"Token":     inv.Token,
			"ExpiresAt": inv.ExpiresAt.Format(time.RFC1123),
		},
	)
	if err != nil {
		logger.CtxWithError(ctx, "invitation email failed", err, "invitation_id", inv.ID)
		return nil, apperrors.ErrNotificationFailed.WithError(err)
	}

	return toInvitationResponse(inv), nil
}

func (s *InvitationServiceImpl) List(ctx context.Context, page, pageSize int) (*dto.InvitationListResponse, error) {
	limit, offset := pageBounds(page, pageSize)
	invitations, total, err := s.invitationRepo.FindAll(s.db.WithContext(ctx), limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, *toInvitationResponse(&invitations[i]))
	}
	return &dto.InvitationListResponse{Invitations: responses, Total: total}, nil
}

func (s *InvitationServiceImpl) Accept(ctx context.Context, req *dto.AcceptInvitationRequest) (*dto.LoginResponse, error) {
	inv, err := s.invitationRepo.FindByToken(s.db.WithContext(ctx), req.Token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if inv.Accepted {
		return nil, apperrors.ErrInvitationAccepted
	}
	if time.Now().After(inv.ExpiresAt) {
		return nil, apperrors.ErrInvitationExpired
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        inv.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		profile := &models.AdminProfile{
			UserID:   user.ID,
			FullName: req.FullName,
		}
		if err := s.profileRepo.CreateAdminProfile(tx, profile); err != nil {
			return err
		}
		inv.Accepted = true
		return s.invitationRepo.Update(tx, inv)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin invitation accepted", "invitation_id", inv.ID, "user_id", user.ID)
	return s.authService.Login(ctx, &dto.LoginRequest{Email: inv.Email, Password: req.Password})
}

func toInvitationResponse(inv *models.AdminInvitation) *dto.InvitationResponse {
	return &dto.InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		InvitedBy: inv.InvitedBy,
		Accepted:  inv.Accepted,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}
