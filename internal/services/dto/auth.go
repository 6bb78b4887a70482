package dto

import (
	"time"

	"encore_backend/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,oneof=artist customer"`

	City string `json:"city" validate:"omitempty,max=100"`

	// Artist fields
	StageName string   `json:"stage_name,omitempty" validate:"required_if=Role artist"`
	Genres    []string `json:"genres,omitempty" validate:"omitempty,max=10,dive,max=50"`

	// Customer fields
	FullName string `json:"full_name,omitempty" validate:"required_if=Role customer"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	// AllDevices revokes every refresh token of the session's user,
	// not just the presented one.
	AllDevices bool `json:"all_devices"`
}

// LoginResponse keeps the role flags alongside the user payload; the
// flags are derived from the single role enum on the user record.
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
	IsArtist     bool          `json:"is_artist"`
	IsAdmin      bool          `json:"is_admin"`
	IsCustomer   bool          `json:"is_customer"`
}

type UserResponse struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Role       models.UserRole   `json:"role"`
	Status     models.UserStatus `json:"status"`
	IsVerified bool              `json:"is_verified"`
	CreatedAt  time.Time         `json:"created_at"`
	Profile    interface{}       `json:"profile,omitempty"`
}
