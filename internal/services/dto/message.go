package dto

import "time"

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid4"`
	Content    string `json:"content" validate:"required,max=5000"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages []*MessageResponse `json:"messages"`
	Total    int64              `json:"total"`
	Unread   int64              `json:"unread,omitempty"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
