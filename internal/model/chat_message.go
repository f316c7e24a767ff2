package model

// ChatMessage is one tutoring exchange: the student's prompt and the
// backend's reply. Created per turn, never mutated.
type ChatMessage struct {
	UUIDBase
	UserID     uint   `gorm:"index;not null" json:"userId"`
	Message    string `gorm:"type:text;not null" json:"message"`
	Response   string `gorm:"type:text" json:"response"`
	AIProvider string `gorm:"size:30" json:"aiProvider"`
	Context    string `gorm:"size:100" json:"context,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
