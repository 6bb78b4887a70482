package models

import "time"

type Gig struct {
	BaseModel
	CustomerID  string    `gorm:"not null;index" json:"customer_id"`
	ArtistID    string    `gorm:"not null;index" json:"artist_id"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Price       float64   `gorm:"not null" json:"price"`
	Status      GigStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Customer User          `gorm:"foreignKey:CustomerID" json:"-"`
	Artist   ArtistProfile `gorm:"foreignKey:ArtistID" json:"-"`
}
