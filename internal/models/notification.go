package models

// Notification is a fire-and-forget message to one recipient. Creation is
// best-effort everywhere: a failed insert is logged and never fails the
// operation that triggered it.
type Notification struct {
	BaseModel
	RecipientID string           `gorm:"type:uuid;not null;index" json:"recipientId"`
	SenderID    string           `gorm:"type:uuid" json:"senderId,omitempty"`
	Type        NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title       string           `gorm:"not null" json:"title"`
	Message     string           `json:"message"`
	Link        string           `json:"link,omitempty"`

	RelatedJobID         string `gorm:"type:uuid" json:"relatedJobId,omitempty"`
	RelatedApplicationID string `gorm:"type:uuid" json:"relatedApplicationId,omitempty"`

	IsRead bool `gorm:"default:false;index" json:"isRead"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
