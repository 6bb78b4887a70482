package repositories

import (
	"errors"

	"encore_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// ArtistProfile operations
	CreateArtistProfile(db *gorm.DB, profile *models.ArtistProfile) error
	FindArtistProfileByID(db *gorm.DB, id string) (*models.ArtistProfile, error)
	FindArtistProfileByUserID(db *gorm.DB, userID string) (*models.ArtistProfile, error)
	UpdateArtistProfile(db *gorm.DB, profile *models.ArtistProfile) error
	UpdateArtistRanking(db *gorm.DB, artistID string, ranking float64, ratingCount int64) error

	// CustomerProfile operations
	CreateCustomerProfile(db *gorm.DB, profile *models.CustomerProfile) error
	FindCustomerProfileByUserID(db *gorm.DB, userID string) (*models.CustomerProfile, error)
	UpdateCustomerProfile(db *gorm.DB, profile *models.CustomerProfile) error

	// AdminProfile operations
	CreateAdminProfile(db *gorm.DB, profile *models.AdminProfile) error
	FindAdminProfileByUserID(db *gorm.DB, userID string) (*models.AdminProfile, error)
	UpdateAdminProfile(db *gorm.DB, profile *models.AdminProfile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// Artist profiles

func (r *ProfileRepositoryImpl) CreateArtistProfile(db *gorm.DB, profile *models.ArtistProfile) error {
	var existing models.ArtistProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindArtistProfileByID(db *gorm.DB, id string) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindArtistProfileByUserID(db *gorm.DB, userID string) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateArtistProfile(db *gorm.DB, profile *models.ArtistProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateArtistRanking(db *gorm.DB, artistID string, ranking float64, ratingCount int64) error {
	result := db.Model(&models.ArtistProfile{}).Where("id = ?", artistID).
		Updates(map[string]interface{}{"ranking": ranking, "rating_count": ratingCount})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Customer profiles

func (r *ProfileRepositoryImpl) CreateCustomerProfile(db *gorm.DB, profile *models.CustomerProfile) error {
	var existing models.CustomerProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCustomerProfileByUserID(db *gorm.DB, userID string) (*models.CustomerProfile, error) {
	var profile models.CustomerProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCustomerProfile(db *gorm.DB, profile *models.CustomerProfile) error {
	return db.Save(profile).Error
}

// Admin profiles

func (r *ProfileRepositoryImpl) CreateAdminProfile(db *gorm.DB, profile *models.AdminProfile) error {
	var existing models.AdminProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindAdminProfileByUserID(db *gorm.DB, userID string) (*models.AdminProfile, error) {
	var profile models.AdminProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateAdminProfile(db *gorm.DB, profile *models.AdminProfile) error {
	return db.Save(profile).Error
}
