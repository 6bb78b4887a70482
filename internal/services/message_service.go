package services

import (
	"context"

	"encore_backend/internal/models"
	"encore_backend/internal/repositories"
	"encore_backend/internal/services/dto"
	"encore_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MessageService interface {
	Send(ctx context.Context, senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	Inbox(ctx context.Context, userID string, page, pageSize int) (*dto.MessageListResponse, error)
	Sent(ctx context.Context, userID string, page, pageSize int) (*dto.MessageListResponse, error)
	Conversation(ctx context.Context, userID, otherID string, page, pageSize int) (*dto.MessageListResponse, error)
	MarkRead(ctx context.Context, userID, messageID string) error
}

type MessageServiceImpl struct {
	db          *gorm.DB
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(
	db *gorm.DB,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) MessageService {
	return &MessageServiceImpl{
		db:          db,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *MessageServiceImpl) Send(ctx context.Context, senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrSelfMessage
	}

	if _, err := s.userRepo.FindByID(s.db.WithContext(ctx), req.ReceiverID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(s.db.WithContext(ctx), message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toMessageResponse(message), nil
}

func (s *MessageServiceImpl) Inbox(ctx context.Context, userID string, page, pageSize int) (*dto.MessageListResponse, error) {
	limit, offset := pageBounds(page, pageSize)
	messages, total, err := s.messageRepo.FindReceived(s.db.WithContext(ctx), userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.messageRepo.CountUnread(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildMessageList(messages, total, page, pageSize)
	resp.Unread = unread
	return resp, nil
}

func (s *MessageServiceImpl) Sent(ctx context.Context, userID string, page, pageSize int) (*dto.MessageListResponse, error) {
	limit, offset := pageBounds(page, pageSize)
	messages, total, err := s.messageRepo.FindSent(s.db.WithContext(ctx), userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildMessageList(messages, total, page, pageSize), nil
}

func (s *MessageServiceImpl) Conversation(ctx context.Context, userID, otherID string, page, pageSize int) (*dto.MessageListResponse, error) {
	limit, offset := pageBounds(page, pageSize)
	messages, total, err := s.messageRepo.FindConversation(s.db.WithContext(ctx), userID, otherID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildMessageList(messages, total, page, pageSize), nil
}

// MarkRead is receiver-only.
func (s *MessageServiceImpl) MarkRead(ctx context.Context, userID, messageID string) error {
	message, err := s.messageRepo.FindByID(s.db.WithContext(ctx), messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}
	if message.ReceiverID != userID {
		return apperrors.ErrNotMessageReceiver
	}

	if err := s.messageRepo.MarkRead(s.db.WithContext(ctx), messageID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildMessageList(messages []models.Message, total int64, page, pageSize int) *dto.MessageListResponse {
	responses := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}
	return &dto.MessageListResponse{
		Messages: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

func toMessageResponse(message *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsRead:     message.IsRead,
		CreatedAt:  message.CreatedAt,
	}
}
