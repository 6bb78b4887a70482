package services

import (
	"context"

	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	// GetUserDetails returns a user together with its role profile.
	GetUserDetails(ctx context.Context, userID string) (*dto.UserDetailResponse, error)
}

type UserServiceImpl struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{db: db, userRepo: userRepo}
}

func (s *UserServiceImpl) GetUserDetails(ctx context.Context, userID string) (*dto.UserDetailResponse, error) {
	user, err := s.userRepo.FindByID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := buildUserResponse(user)
	var profile interface{}
	switch user.Role {
	case models.UserRoleArtist:
		profile = user.ArtistProfile
	case models.UserRoleCustomer:
		profile = user.CustomerProfile
	case models.UserRoleAdmin:
		profile = user.AdminProfile
	}

	return &dto.UserDetailResponse{User: resp, Profile: profile}, nil
}
