package models

// ArtistApplication is submitted before an account exists. An admin
// decision moves it from pending to approved or rejected, exactly once.
type ArtistApplication struct {
	BaseModel
	Name           string            `gorm:"not null" json:"name"`
	Email          string            `gorm:"not null;index" json:"email"`
	Phone          string            `json:"phone"`
	Genre          string            `gorm:"not null" json:"genre"`
	Biography      string            `json:"biography"`
	SampleSongPath string            `json:"sample_song_path"`
	Status         ApplicationStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`
	Feedback       string            `json:"feedback"`
}
