package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentConfig is one configured chat agent the widget can attach to.
type AgentConfig struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Tone      string    `gorm:"type:text;default:'friendly and professional'" json:"tone"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationship
	KnowledgeBase *KnowledgeBase `gorm:"foreignKey:AgentConfigID;references:ID" json:"knowledge_base,omitempty"`
}

func (AgentConfig) TableName() string {
	return "agent_configs"
}

func (a *AgentConfig) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
