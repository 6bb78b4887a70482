package services

import (
	"context"

	"encore_backend/internal/logger"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	Create(ctx context.Context, customerID, artistID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByArtist(ctx context.Context, artistID string, page, pageSize int) (*dto.ReviewListResponse, error)
}

type ReviewServiceImpl struct {
	db          *gorm.DB
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewReviewService(
	db *gorm.DB,
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &ReviewServiceImpl{
		db:          db,
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// Create inserts the review and recomputes the artist's ranking from
// the full review history inside one transaction. The stored ranking
// is always the mean over all persisted reviews.
func (s *ReviewServiceImpl) Create(ctx context.Context, customerID, artistID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	caller, err := s.userRepo.FindByID(s.db.WithContext(ctx), customerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !caller.IsCustomer() {
		return nil, apperrors.ErrForbidden
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	if _, err := s.profileRepo.FindArtistProfileByID(s.db.WithContext(ctx), artistID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.ArtistReview{
		ArtistID:   artistID,
		CustomerID: customerID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		stats, err := s.reviewRepo.CalculateArtistRanking(tx, artistID)
		if err != nil {
			return err
		}
		return s.profileRepo.UpdateArtistRanking(tx, artistID, stats.AverageRating, stats.TotalReviews)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "review created", "artist_id", artistID, "rating", req.Rating)
	return toReviewResponse(review), nil
}

func (s *ReviewServiceImpl) ListByArtist(ctx context.Context, artistID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	profile, err := s.profileRepo.FindArtistProfileByID(s.db.WithContext(ctx), artistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	limit, offset := pageBounds(page, pageSize)
	reviews, total, err := s.reviewRepo.FindByArtist(s.db.WithContext(ctx), artistID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{
		Reviews:  responses,
		Ranking:  profile.Ranking,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toReviewResponse(review *models.ArtistReview) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         review.ID,
		ArtistID:   review.ArtistID,
		CustomerID: review.CustomerID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
	}
}
