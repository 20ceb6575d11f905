package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Lead is a submitted contact-form payload plus its triage score.
type Lead struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name              string         `gorm:"type:text;not null" json:"name"`
	Email             string         `gorm:"type:text;not null" json:"email"`
	Company           string         `gorm:"type:text" json:"company,omitempty"`
	Phone             string         `gorm:"type:text" json:"phone,omitempty"`
	Message           string         `gorm:"type:text" json:"message,omitempty"`
	Budget            string         `gorm:"type:text" json:"budget,omitempty"`
	Timeline          string         `gorm:"type:text" json:"timeline,omitempty"`
	CompanySize       string         `gorm:"type:text" json:"company_size,omitempty"`
	InterestedModules pq.StringArray `gorm:"type:text[]" json:"interested_modules"`
	Score             string         `gorm:"type:text" json:"score"` // string-encoded additive sum
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CreateLeadRequest is the contact-form payload.
type CreateLeadRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Company           string   `json:"company,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Message           string   `json:"message,omitempty"`
	Budget            string   `json:"budget,omitempty"`
	Timeline          string   `json:"timeline,omitempty"`
	CompanySize       string   `json:"companySize,omitempty"`
	InterestedModules []string `json:"interestedModules,omitempty"`
}
