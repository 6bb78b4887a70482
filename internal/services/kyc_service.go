package services

import (
	"context"

	"encore_backend/internal/crypto"
	"encore_backend/internal/logger"
	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type KYCService interface {
	// Collect stores a KYC submission. BVN and NIN are encrypted
	// before the record is written; plaintext never reaches the
	// database or the logs.
	Collect(ctx context.Context, userID string, req *dto.CollectKYCRequest) (*dto.KYCAcknowledgement, error)
}

type KYCServiceImpl struct {
	db               *gorm.DB
	verificationRepo repositories.VerificationRepository
	userRepo         repositories.UserRepository
	encryptor        *crypto.FieldEncryptor
}

func NewKYCService(
	db *gorm.DB,
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
	encryptor *crypto.FieldEncryptor,
) KYCService {
	return &KYCServiceImpl{
		db:               db,
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		encryptor:        encryptor,
	}
}

func (s *KYCServiceImpl) Collect(ctx context.Context, userID string, req *dto.CollectKYCRequest) (*dto.KYCAcknowledgement, error) {
	if _, err := s.userRepo.FindByID(s.db.WithContext(ctx), userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	encryptedBVN, err := s.encryptor.Encrypt(req.BVN)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	encryptedNIN, err := s.encryptor.Encrypt(req.NIN)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.VerificationRequest{
		UserID:      userID,
		BVN:         encryptedBVN,
		NIN:         encryptedNIN,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		Phone:       req.Phone,
	}
	if err := s.verificationRepo.Create(s.db.WithContext(ctx), record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "kyc data collected", "user_id", userID, "request_id", record.ID)
	return &dto.KYCAcknowledgement{
		Message:   "KYC information received",
		RequestID: record.ID,
	}, nil
}
