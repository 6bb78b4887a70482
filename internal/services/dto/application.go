package dto

import (
	"time"

	"encore_backend/internal/models"
)

type SubmitApplicationRequest struct {
	Name      string `form:"name" json:"name" validate:"required,max=255"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Phone     string `form:"phone" json:"phone" validate:"omitempty,max=20"`
	Genre     string `form:"genre" json:"genre" validate:"required,max=255"`
	Biography string `form:"biography" json:"biography" validate:"required,max=5000"`
}

type ApplicationDecisionRequest struct {
	Status   models.ApplicationStatus `json:"status" validate:"required,oneof=approved rejected"`
	Feedback string                   `json:"feedback" validate:"omitempty,max=2000"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone,omitempty"`
	Genre         string                   `json:"genre"`
	Biography     string                   `json:"biography"`
	SampleSongURL string                   `json:"sample_song_url,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	Feedback      string                   `json:"feedback,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
}
