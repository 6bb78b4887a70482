package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ArtistProfile struct {
	BaseModel
	UserID         string         `gorm:"uniqueIndex;not null" json:"user_id"`
	StageName      string         `gorm:"not null" json:"stage_name"`
	Genres         datatypes.JSON `gorm:"type:jsonb" json:"genres" swaggerignore:"true"` // ["afrobeat", "jazz"]
	Biography      string         `json:"biography"`
	City           string         `json:"city"`
	Phone          string         `json:"phone"`
	HourlyRate     float64        `json:"hourly_rate"`
	Ranking        float64        `gorm:"default:0" json:"ranking"`
	RatingCount    int64          `gorm:"default:0" json:"rating_count"`
	DocumentPath   string         `json:"document_path"`
	SampleSongPath string         `json:"sample_song_path"`
	IsAvailable    bool           `gorm:"default:true" json:"is_available"`

	// Relations
	Gigs    []Gig          `gorm:"foreignKey:ArtistID" json:"-"`
	Reviews []ArtistReview `gorm:"foreignKey:ArtistID" json:"-"`
}

// GetGenres returns the artist's genres as a string slice.
func (a *ArtistProfile) GetGenres() []string {
	var genres []string
	if len(a.Genres) > 0 {
		_ = json.Unmarshal(a.Genres, &genres)
	}
	return genres
}

// SetGenres stores the genre list on the profile.
func (a *ArtistProfile) SetGenres(genres []string) {
	data, _ := json.Marshal(genres)
	a.Genres = datatypes.JSON(data)
}

type CustomerProfile struct {
	BaseModel
	UserID          string         `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName        string         `gorm:"not null" json:"full_name"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	PhotoPath       string         `json:"photo_path"`
	PreferredGenres pq.StringArray `gorm:"type:text[]" json:"preferred_genres" swaggerignore:"true"`
}

type AdminProfile struct {
	BaseModel
	UserID   string `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName string `json:"full_name"`
	Title    string `json:"title"`
}
