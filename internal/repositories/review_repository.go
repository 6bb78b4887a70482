package repositories

import (
	"encore_backend/internal/models"

	"gorm.io/gorm"
)

// RankingStats is the aggregate over an artist's full review history.
type RankingStats struct {
	AverageRating float64
	TotalReviews  int64
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.ArtistReview) error
	FindByArtist(db *gorm.DB, artistID string, limit, offset int) ([]models.ArtistReview, int64, error)
	CalculateArtistRanking(db *gorm.DB, artistID string) (*RankingStats, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.ArtistReview) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByArtist(db *gorm.DB, artistID string, limit, offset int) ([]models.ArtistReview, int64, error) {
	var total int64
	if err := db.Model(&models.ArtistReview{}).Where("artist_id = ?", artistID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.ArtistReview
	err := db.Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}

// CalculateArtistRanking recomputes the mean rating from the review
// table. The stored ranking on the profile is derived, never
// authoritative.
func (r *ReviewRepositoryImpl) CalculateArtistRanking(db *gorm.DB, artistID string) (*RankingStats, error) {
	var stats RankingStats
	err := db.Model(&models.ArtistReview{}).
		Where("artist_id = ?", artistID).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
