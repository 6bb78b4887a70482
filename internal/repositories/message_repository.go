package repositories

import (
	"errors"

	"encore_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindByID(db *gorm.DB, id string) (*models.Message, error)
	FindReceived(db *gorm.DB, userID string, limit, offset int) ([]models.Message, int64, error)
	FindSent(db *gorm.DB, userID string, limit, offset int) ([]models.Message, int64, error)
	FindConversation(db *gorm.DB, userA, userB string, limit, offset int) ([]models.Message, int64, error)
	MarkRead(db *gorm.DB, id string) error
	CountUnread(db *gorm.DB, userID string) (int64, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	if err := db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindReceived(db *gorm.DB, userID string, limit, offset int) ([]models.Message, int64, error) {
	return r.findWhere(db, db.Where("receiver_id = ?", userID), limit, offset)
}

func (r *MessageRepositoryImpl) FindSent(db *gorm.DB, userID string, limit, offset int) ([]models.Message, int64, error) {
	return r.findWhere(db, db.Where("sender_id = ?", userID), limit, offset)
}

func (r *MessageRepositoryImpl) FindConversation(db *gorm.DB, userA, userB string, limit, offset int) ([]models.Message, int64, error) {
	cond := db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	)
	return r.findWhere(db, cond, limit, offset)
}

func (r *MessageRepositoryImpl) findWhere(db *gorm.DB, cond *gorm.DB, limit, offset int) ([]models.Message, int64, error) {
	var total int64
	if err := db.Model(&models.Message{}).Where(cond).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := db.Where(cond).Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, total, err
}

func (r *MessageRepositoryImpl) MarkRead(db *gorm.DB, id string) error {
	result := db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) CountUnread(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}
