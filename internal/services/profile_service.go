package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"encore_backend/internal/logger"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/internal/storage"
	"encore_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	// GetMyProfile resolves the caller's profile by role.
	GetMyProfile(ctx context.Context, userID string) (interface{}, error)

	UpdateArtistProfile(ctx context.Context, userID string, req *dto.UpdateArtistProfileRequest) (*models.ArtistProfile, error)
	UpdateCustomerProfile(ctx context.Context, userID string, req *dto.UpdateCustomerProfileRequest) (*models.CustomerProfile, error)
	UpdateAdminProfile(ctx context.Context, userID string, req *dto.UpdateAdminProfileRequest) (*models.AdminProfile, error)

	UploadArtistDocument(ctx context.Context, userID, filename string, reader io.Reader, contentType string) (*models.ArtistProfile, error)
	UploadCustomerPhoto(ctx context.Context, userID, filename string, reader io.Reader, contentType string) (*models.CustomerProfile, error)
}

type ProfileServiceImpl struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
}

func NewProfileService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
) ProfileService {
	return &ProfileServiceImpl{
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     store,
	}
}

func (s *ProfileServiceImpl) GetMyProfile(ctx context.Context, userID string) (interface{}, error) {
	user, err := s.userRepo.FindByID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	switch user.Role {
	case models.UserRoleArtist:
		if user.ArtistProfile == nil {
			return nil, apperrors.ErrProfileNotFound
		}
		return user.ArtistProfile, nil
	case models.UserRoleCustomer:
		if user.CustomerProfile == nil {
			return nil, apperrors.ErrProfileNotFound
		}
		return user.CustomerProfile, nil
	case models.UserRoleAdmin:
		if user.AdminProfile == nil {
			return nil, apperrors.ErrProfileNotFound
		}
		return user.AdminProfile, nil
	}
	return nil, apperrors.ErrInvalidUserRole
}

func (s *ProfileServiceImpl) UpdateArtistProfile(ctx context.Context, userID string, req *dto.UpdateArtistProfileRequest) (*models.ArtistProfile, error) {
	profile, err := s.findArtistProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.StageName != nil {
		profile.StageName = *req.StageName
	}
	if req.Genres != nil {
		profile.SetGenres(req.Genres)
	}
	if req.Biography != nil {
		profile.Biography = *req.Biography
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if err := s.profileRepo.UpdateArtistProfile(s.db.WithContext(ctx), profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCustomerProfile(ctx context.Context, userID string, req *dto.UpdateCustomerProfileRequest) (*models.CustomerProfile, error) {
	profile, err := s.profileRepo.FindCustomerProfileByUserID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.PreferredGenres != nil {
		profile.PreferredGenres = req.PreferredGenres
	}

	if err := s.profileRepo.UpdateCustomerProfile(s.db.WithContext(ctx), profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateAdminProfile(ctx context.Context, userID string, req *dto.UpdateAdminProfileRequest) (*models.AdminProfile, error) {
	profile, err := s.profileRepo.FindAdminProfileByUserID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}

	if err := s.profileRepo.UpdateAdminProfile(s.db.WithContext(ctx), profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UploadArtistDocument(ctx context.Context, userID, filename string, reader io.Reader, contentType string) (*models.ArtistProfile, error) {
	profile, err := s.findArtistProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	path := buildObjectPath("artists/documents", profile.ID, filename)
	if err := s.storage.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "Failed to store document", 500)
	}

	// best effort cleanup of the previous file
	if profile.DocumentPath != "" && profile.DocumentPath != path {
		if err := s.storage.Delete(ctx, profile.DocumentPath); err != nil {
			logger.CtxWarn(ctx, "failed to delete previous document", "path", profile.DocumentPath, "error", err)
		}
	}

	profile.DocumentPath = path
	if err := s.profileRepo.UpdateArtistProfile(s.db.WithContext(ctx), profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "artist document uploaded", "user_id", userID, "path", path)
	return profile, nil
}

func (s *ProfileServiceImpl) UploadCustomerPhoto(ctx context.Context, userID, filename string, reader io.Reader, contentType string) (*models.CustomerProfile, error) {
	profile, err := s.profileRepo.FindCustomerProfileByUserID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	path := buildObjectPath("customers/photos", profile.ID, filename)
	if err := s.storage.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "Failed to store photo", 500)
	}

	if profile.PhotoPath != "" && profile.PhotoPath != path {
		if err := s.storage.Delete(ctx, profile.PhotoPath); err != nil {
			logger.CtxWarn(ctx, "failed to delete previous photo", "path", profile.PhotoPath, "error", err)
		}
	}

	profile.PhotoPath = path
	if err := s.profileRepo.UpdateCustomerProfile(s.db.WithContext(ctx), profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) findArtistProfile(ctx context.Context, userID string) (*models.ArtistProfile, error) {
	profile, err := s.profileRepo.FindArtistProfileByUserID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// buildObjectPath keeps uploads unique per write so a stale URL never
// serves replaced content.
func buildObjectPath(prefix, ownerID, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s/%d_%s%s", prefix, ownerID, time.Now().Unix(), uuid.NewString()[:8], ext)
}
