package repositories

import (
	"encore_backend/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	Create(db *gorm.DB, req *models.VerificationRequest) error
	FindByUserID(db *gorm.DB, userID string) ([]models.VerificationRequest, error)
}

type VerificationRepositoryImpl struct{}

func NewVerificationRepository() VerificationRepository {
	return &VerificationRepositoryImpl{}
}

func (r *VerificationRepositoryImpl) Create(db *gorm.DB, req *models.VerificationRequest) error {
	return db.Create(req).Error
}

func (r *VerificationRepositoryImpl) FindByUserID(db *gorm.DB, userID string) ([]models.VerificationRequest, error) {
	var requests []models.VerificationRequest
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}
