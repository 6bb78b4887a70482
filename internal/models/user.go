package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`

	// Relations
	ArtistProfile   *ArtistProfile   `gorm:"foreignKey:UserID" json:"artist_profile,omitempty"`
	CustomerProfile *CustomerProfile `gorm:"foreignKey:UserID" json:"customer_profile,omitempty"`
	AdminProfile    *AdminProfile    `gorm:"foreignKey:UserID" json:"admin_profile,omitempty"`
	RefreshTokens   []RefreshToken   `gorm:"foreignKey:UserID" json:"-"`
}

// Role flag accessors kept for the login payload, which exposes the
// original boolean envelope derived from the role enum.

func (u *User) IsArtist() bool   { return u.Role == UserRoleArtist }
func (u *User) IsCustomer() bool { return u.Role == UserRoleCustomer }
func (u *User) IsAdmin() bool    { return u.Role == UserRoleAdmin }

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
