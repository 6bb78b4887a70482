package repositories

import (
	"errors"

	"encore_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigNotFound = errors.New("gig not found")

type GigRepository interface {
	Create(db *gorm.DB, gig *models.Gig) error
	FindByID(db *gorm.DB, id string) (*models.Gig, error)
	FindByCustomer(db *gorm.DB, customerID string, limit, offset int) ([]models.Gig, int64, error)
	FindByArtist(db *gorm.DB, artistID string, limit, offset int) ([]models.Gig, int64, error)
	Update(db *gorm.DB, gig *models.Gig) error
}

type GigRepositoryImpl struct{}

func NewGigRepository() GigRepository {
	return &GigRepositoryImpl{}
}

func (r *GigRepositoryImpl) Create(db *gorm.DB, gig *models.Gig) error {
	return db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Gig, error) {
	var gig models.Gig
	if err := db.Preload("Artist").First(&gig, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepositoryImpl) FindByCustomer(db *gorm.DB, customerID string, limit, offset int) ([]models.Gig, int64, error) {
	return r.findWhere(db, "customer_id = ?", customerID, limit, offset)
}

func (r *GigRepositoryImpl) FindByArtist(db *gorm.DB, artistID string, limit, offset int) ([]models.Gig, int64, error) {
	return r.findWhere(db, "artist_id = ?", artistID, limit, offset)
}

func (r *GigRepositoryImpl) findWhere(db *gorm.DB, cond, id string, limit, offset int) ([]models.Gig, int64, error) {
	var total int64
	if err := db.Model(&models.Gig{}).Where(cond, id).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var gigs []models.Gig
	err := db.Where(cond, id).Order("date DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	return gigs, total, err
}

func (r *GigRepositoryImpl) Update(db *gorm.DB, gig *models.Gig) error {
	return db.Save(gig).Error
}
