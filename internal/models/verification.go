package models

import "time"

// VerificationRequest stores collected KYC data. BVN and NIN are
// stored as ciphertext only; no downstream verification call is made.
type VerificationRequest struct {
	BaseModel
	UserID      string    `gorm:"not null;index" json:"user_id"`
	BVN         string    `gorm:"not null" json:"-"`
	NIN         string    `gorm:"not null" json:"-"`
	FullName    string    `gorm:"not null" json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
