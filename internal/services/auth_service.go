package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"encore_backend/internal/auth"
	"encore_backend/internal/logger"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}

type AuthServiceImpl struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	tokenRepo   repositories.RefreshTokenRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
	}
}

// Register creates the user together with its role profile in a
// single transaction, then issues a token pair.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if !models.ValidRole(req.Role) || req.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		switch req.Role {
		case models.UserRoleArtist:
			profile := &models.ArtistProfile{
				UserID:      user.ID,
				StageName:   req.StageName,
				City:        req.City,
				Phone:       req.Phone,
				IsAvailable: true,
			}
			profile.SetGenres(req.Genres)
			return s.profileRepo.CreateArtistProfile(tx, profile)
		case models.UserRoleCustomer:
			profile := &models.CustomerProfile{
				UserID:   user.ID,
				FullName: req.FullName,
				Phone:    req.Phone,
				City:     req.City,
			}
			return s.profileRepo.CreateCustomerProfile(tx, profile)
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return s.issueTokens(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(s.db.WithContext(ctx), req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return nil, apperrors.ErrUserBanned
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return s.issueTokens(ctx, user)
}

// RefreshToken rotates the refresh token: the presented token is
// consumed and a new pair is issued.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.tokenRepo.FindByToken(s.db.WithContext(ctx), refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.DeleteByToken(s.db.WithContext(ctx), refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(s.db.WithContext(ctx), stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.tokenRepo.DeleteByToken(s.db.WithContext(ctx), refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token, or every token of its
// user when AllDevices is set.
func (s *AuthServiceImpl) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if req.AllDevices {
		stored, err := s.tokenRepo.FindByToken(s.db.WithContext(ctx), req.RefreshToken)
		if err != nil {
			if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
				return apperrors.ErrInvalidToken
			}
			return apperrors.InternalError(err)
		}
		if err := s.tokenRepo.DeleteByUserID(s.db.WithContext(ctx), stored.UserID); err != nil {
			return apperrors.InternalError(err)
		}
		logger.CtxInfo(ctx, "user logged out everywhere", "user_id", stored.UserID)
		return nil
	}

	if err := s.tokenRepo.DeleteByToken(s.db.WithContext(ctx), req.RefreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(s.db.WithContext(ctx), record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         buildUserResponse(user),
		IsArtist:     user.IsArtist(),
		IsAdmin:      user.IsAdmin(),
		IsCustomer:   user.IsCustomer(),
	}, nil
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// buildUserResponse attaches whichever role profile is loaded.
func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
	switch {
	case user.ArtistProfile != nil:
		resp.Profile = user.ArtistProfile
	case user.CustomerProfile != nil:
		resp.Profile = user.CustomerProfile
	case user.AdminProfile != nil:
		resp.Profile = user.AdminProfile
	}
	return resp
}
