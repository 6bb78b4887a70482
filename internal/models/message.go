package models

type Message struct {
	BaseModel
	SenderID   string `gorm:"not null;index" json:"sender_id"`
	ReceiverID string `gorm:"not null;index" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	IsRead     bool   `gorm:"default:false" json:"is_read"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
