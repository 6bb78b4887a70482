package dto

import "time"

// CollectKYCRequest carries raw KYC fields. BVN and NIN are encrypted
// before they reach storage; everything else is stored verbatim.
type CollectKYCRequest struct {
	BVN         string    `json:"bvn" validate:"required,bvn"`
	NIN         string    `json:"nin" validate:"required,nin"`
	FullName    string    `json:"full_name" validate:"required,max=255"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Address     string    `json:"address" validate:"omitempty,max=255"`
	Phone       string    `json:"phone" validate:"omitempty,max=20"`
}

type KYCAcknowledgement struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}
