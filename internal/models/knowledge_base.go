package models

import (
	"encoding/json"
	"time"

	"github.com/aidevelo/aidevelo-ai-be/internal/core/llm"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KnowledgeBase is the read-only grounding bundle attached to an agent
// configuration. Loaded per session, never mutated by the chat flow.
type KnowledgeBase struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AgentConfigID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"agent_config_id"`
	CompanyName        string         `gorm:"type:text" json:"company_name"`
	CompanyDescription string         `gorm:"type:text" json:"company_description"`
	Services           pq.StringArray `gorm:"type:text[]" json:"services"`
	FAQs               datatypes.JSON `gorm:"type:jsonb" json:"faqs"` // [{question, answer}]
	BusinessHours      string         `gorm:"type:text" json:"business_hours"`
	ContactEmail       string         `gorm:"type:text" json:"contact_email"`
	ContactPhone       string         `gorm:"type:text" json:"contact_phone"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KnowledgeBase) TableName() string {
	return "knowledge_bases"
}

func (kb *KnowledgeBase) BeforeCreate(tx *gorm.DB) error {
	if kb.ID == uuid.Nil {
		kb.ID = uuid.New()
	}
	return nil
}

// ToGrounding maps the stored row into the prompt-builder bundle.
// Malformed FAQ JSON degrades to no FAQs; the prompt builder then
// substitutes the documented defaults.
func (kb *KnowledgeBase) ToGrounding(tone string) llm.KnowledgeBase {
	var faqs []llm.FAQ
	if len(kb.FAQs) > 0 {
		_ = json.Unmarshal(kb.FAQs, &faqs)
	}

	return llm.KnowledgeBase{
		CompanyName:        kb.CompanyName,
		CompanyDescription: kb.CompanyDescription,
		Services:           kb.Services,
		FAQs:               faqs,
		BusinessHours:      kb.BusinessHours,
		ContactEmail:       kb.ContactEmail,
		ContactPhone:       kb.ContactPhone,
		Tone:               tone,
	}
}
