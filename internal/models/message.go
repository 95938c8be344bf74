// internal/models/message.go
package models

type Message struct {
	BaseModel
	ProjectID  uint   `json:"project_id" gorm:"not null;index"`
	SenderID   uint   `json:"sender_id" gorm:"not null;index"`
	ReceiverID uint   `json:"receiver_id" gorm:"not null;index"`
	Content    string `json:"content" gorm:"type:text;not null"`

	// Relationships
	Sender   *User    `json:"-" gorm:"foreignKey:SenderID"`
	Receiver *User    `json:"-" gorm:"foreignKey:ReceiverID"`
	Project  *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// MessageWithSender is the joined projection returned when listing a
// project's message thread.
type MessageWithSender struct {
	Message
	Sender *UserRef `json:"sender"`
}
