package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sender roles for chat messages.
const (
	SenderUser  = "user"
	SenderAgent = "agent"
)

// ChatMessage is one turn in a session. Append-only; never mutated or
// deleted. Ordered by CreatedAt for history reconstruction.
type ChatMessage struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"session_id"`
	Sender     string         `gorm:"type:text;not null" json:"sender"` // "user" or "agent"
	Message    string         `gorm:"type:text;not null" json:"message"`
	ActionData datatypes.JSON `gorm:"type:jsonb" json:"action_data,omitempty"` // agent turns only
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`

	// Relationship
	Session ChatSession `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// PostMessageRequest is the widget's message payload.
type PostMessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Sender    string `json:"sender"`
}

// ChatReply is what the widget receives after a user turn.
type ChatReply struct {
	Message          string      `json:"message"`
	IsActionRequired bool        `json:"isActionRequired"`
	ActionType       string      `json:"actionType,omitempty"`
	ActionData       interface{} `json:"actionData,omitempty"`
	SessionID        string      `json:"sessionId"`
}
