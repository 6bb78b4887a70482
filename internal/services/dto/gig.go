package dto

import (
	"time"

	"encore_backend/internal/models"
)

type CreateGigRequest struct {
	ArtistID    string    `json:"artist_id" validate:"required,uuid4"`
	Description string    `json:"description" validate:"required,max=5000"`
	Date        time.Time `json:"date" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
}

type UpdateGigStatusRequest struct {
	Status models.GigStatus `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type GigResponse struct {
	ID          string           `json:"id"`
	CustomerID  string           `json:"customer_id"`
	ArtistID    string           `json:"artist_id"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Price       float64          `json:"price"`
	Status      models.GigStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type GigListResponse struct {
	Gigs     []*GigResponse `json:"gigs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
