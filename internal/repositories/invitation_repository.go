package repositories

import (
	"errors"

	"encore_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type InvitationRepository interface {
	Create(db *gorm.DB, inv *models.AdminInvitation) error
	FindByToken(db *gorm.DB, token string) (*models.AdminInvitation, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.AdminInvitation, int64, error)
	Update(db *gorm.DB, inv *models.AdminInvitation) error
}

type InvitationRepositoryImpl struct{}

func NewInvitationRepository() InvitationRepository {
	return &InvitationRepositoryImpl{}
}

func (r *InvitationRepositoryImpl) Create(db *gorm.DB, inv *models.AdminInvitation) error {
	return db.Create(inv).Error
}

func (r *InvitationRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.AdminInvitation, error) {
	var inv models.AdminInvitation
	if err := db.First(&inv, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.AdminInvitation, int64, error) {
	var total int64
	if err := db.Model(&models.AdminInvitation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invitations []models.AdminInvitation
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&invitations).Error
	return invitations, total, err
}

func (r *InvitationRepositoryImpl) Update(db *gorm.DB, inv *models.AdminInvitation) error {
	return db.Save(inv).Error
}
