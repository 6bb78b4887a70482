package models

import "time"

// AdminInvitation lets an existing admin invite another admin by
// email. Accepting with the token creates the admin account.
type AdminInvitation struct {
	BaseModel
	Email     string    `gorm:"not null;index" json:"email"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	InvitedBy string    `gorm:"not null" json:"invited_by"`
	Accepted  bool      `gorm:"default:false" json:"accepted"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
