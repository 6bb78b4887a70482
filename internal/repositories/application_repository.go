package repositories

import (
	"errors"

	"encore_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationFilter struct {
	Status   models.ApplicationStatus
	Page     int
	PageSize int
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.ArtistApplication) error
	FindByID(db *gorm.DB, id string) (*models.ArtistApplication, error)
	FindWithFilter(db *gorm.DB, filter ApplicationFilter) ([]models.ArtistApplication, int64, error)
	Update(db *gorm.DB, app *models.ArtistApplication) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.ArtistApplication) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ArtistApplication, error) {
	var app models.ArtistApplication
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindWithFilter(db *gorm.DB, filter ApplicationFilter) ([]models.ArtistApplication, int64, error) {
	query := db.Model(&models.ArtistApplication{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	var apps []models.ArtistApplication
	err := query.Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.ArtistApplication) error {
	return db.Save(app).Error
}
