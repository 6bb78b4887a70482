package models

type ArtistReview struct {
	BaseModel
	ArtistID   string `gorm:"not null;index" json:"artist_id"`
	CustomerID string `gorm:"not null;index" json:"customer_id"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText string `json:"review_text"`

	// Relations
	Artist   ArtistProfile `gorm:"foreignKey:ArtistID" json:"-"`
	Customer User          `gorm:"foreignKey:CustomerID" json:"-"`
}
