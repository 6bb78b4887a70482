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

type GigService interface {
	Create(ctx context.Context, customerID string, req *dto.CreateGigRequest) (*dto.GigResponse, error)
	Get(ctx context.Context, callerID, gigID string) (*dto.GigResponse, error)
	ListForUser(ctx context.Context, userID string, page, pageSize int) (*dto.GigListResponse, error)
	UpdateStatus(ctx context.Context, callerID, gigID string, req *dto.UpdateGigStatusRequest) (*dto.GigResponse, error)
}

type GigServiceImpl struct {
	db          *gorm.DB
	gigRepo     repositories.GigRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewGigService(
	db *gorm.DB,
	gigRepo repositories.GigRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) GigService {
	return &GigServiceImpl{
		db:          db,
		gigRepo:     gigRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *GigServiceImpl) Create(ctx context.Context, customerID string, req *dto.CreateGigRequest) (*dto.GigResponse, error) {
	if _, err := s.profileRepo.FindArtistProfileByID(s.db.WithContext(ctx), req.ArtistID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	gig := &models.Gig{
		CustomerID:  customerID,
		ArtistID:    req.ArtistID,
		Description: req.Description,
		Date:        req.Date,
		Price:       req.Price,
		Status:      models.GigStatusPending,
	}
	if err := s.gigRepo.Create(s.db.WithContext(ctx), gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "gig created", "gig_id", gig.ID, "artist_id", gig.ArtistID)
	return toGigResponse(gig), nil
}

func (s *GigServiceImpl) Get(ctx context.Context, callerID, gigID string) (*dto.GigResponse, error) {
	gig, err := s.findGig(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if !s.isParticipant(ctx, callerID, gig) {
		return nil, apperrors.ErrGigAccessDenied
	}
	return toGigResponse(gig), nil
}

// ListForUser returns gigs the caller participates in: bookings made
// for customers, bookings received for artists.
func (s *GigServiceImpl) ListForUser(ctx context.Context, userID string, page, pageSize int) (*dto.GigListResponse, error) {
	user, err := s.userRepo.FindByID(s.db.WithContext(ctx), userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	limit, offset := pageBounds(page, pageSize)

	var gigs []models.Gig
	var total int64
	switch user.Role {
	case models.UserRoleArtist:
		if user.ArtistProfile == nil {
			return nil, apperrors.ErrProfileNotFound
		}
		gigs, total, err = s.gigRepo.FindByArtist(s.db.WithContext(ctx), user.ArtistProfile.ID, limit, offset)
	default:
		gigs, total, err = s.gigRepo.FindByCustomer(s.db.WithContext(ctx), userID, limit, offset)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.GigResponse, 0, len(gigs))
	for i := range gigs {
		responses = append(responses, toGigResponse(&gigs[i]))
	}
	return &dto.GigListResponse{
		Gigs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus enforces the transition rules: the artist confirms or
// completes, the customer cancels, and nothing leaves a terminal
// state.
func (s *GigServiceImpl) UpdateStatus(ctx context.Context, callerID, gigID string, req *dto.UpdateGigStatusRequest) (*dto.GigResponse, error) {
	gig, err := s.findGig(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if !s.isParticipant(ctx, callerID, gig) {
		return nil, apperrors.ErrGigAccessDenied
	}

	isArtist := gig.Artist.UserID == callerID

	allowed := false
	switch req.Status {
	case models.GigStatusConfirmed:
		allowed = isArtist && gig.Status == models.GigStatusPending
	case models.GigStatusCompleted:
		allowed = isArtist && gig.Status == models.GigStatusConfirmed
	case models.GigStatusCancelled:
		allowed = !isArtist && (gig.Status == models.GigStatusPending || gig.Status == models.GigStatusConfirmed)
	}
	if !allowed {
		return nil, apperrors.ErrInvalidGigTransition
	}

	gig.Status = req.Status
	if err := s.gigRepo.Update(s.db.WithContext(ctx), gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "gig status updated", "gig_id", gig.ID, "status", gig.Status)
	return toGigResponse(gig), nil
}

func (s *GigServiceImpl) findGig(ctx context.Context, gigID string) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(s.db.WithContext(ctx), gigID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigServiceImpl) isParticipant(ctx context.Context, callerID string, gig *models.Gig) bool {
	if gig.CustomerID == callerID {
		return true
	}
	return gig.Artist.UserID == callerID
}

func toGigResponse(gig *models.Gig) *dto.GigResponse {
	return &dto.GigResponse{
		ID:          gig.ID,
		CustomerID:  gig.CustomerID,
		ArtistID:    gig.ArtistID,
		Description: gig.Description,
		Date:        gig.Date,
		Price:       gig.Price,
		Status:      gig.Status,
		CreatedAt:   gig.CreatedAt,
	}
}

func pageBounds(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}
