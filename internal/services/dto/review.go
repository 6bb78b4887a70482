package dto

import "time"

type CreateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	ArtistID   string    `json:"artist_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews  []*ReviewResponse `json:"reviews"`
	Ranking  float64           `json:"ranking"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}
