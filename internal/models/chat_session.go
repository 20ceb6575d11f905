package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatSession represents one visitor's conversation lifetime.
// Lifecycle: created on first widget open, mutated only when a lead is
// captured, ended only by the explicit end operation (or the optional
// idle sweep when configured).
type ChatSession struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AgentConfigID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"agent_config_id"`
	VisitorID      string     `gorm:"type:text" json:"visitor_id,omitempty"`
	VisitorEmail   string     `gorm:"type:text" json:"visitor_email,omitempty"`
	VisitorName    string     `gorm:"type:text" json:"visitor_name,omitempty"`
	IsLeadCaptured bool       `gorm:"default:false" json:"is_lead_captured"`
	StartedAt      time.Time  `gorm:"autoCreateTime" json:"started_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`

	// Relationship
	AgentConfig AgentConfig `gorm:"foreignKey:AgentConfigID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// IsEnded reports whether the session reached its terminal state.
func (s *ChatSession) IsEnded() bool {
	return s.EndedAt != nil
}

// CreateSessionRequest is the widget's session-open payload.
type CreateSessionRequest struct {
	AgentConfigID string `json:"agentConfigId"`
	VisitorID     string `json:"visitorId,omitempty"`
	VisitorEmail  string `json:"visitorEmail,omitempty"`
	VisitorName   string `json:"visitorName,omitempty"`
}
