package repositories

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepo interface {
	Create(message *models.ChatMessage) error
	GetRecent(sessionID uuid.UUID, limit int) ([]models.ChatMessage, error)
	GetBySession(sessionID uuid.UUID) ([]models.ChatMessage, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// GetRecent returns the most recent limit messages in oldest-first
// order, for conversation-history reconstruction.
func (r *messageRepo) GetRecent(sessionID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetBySession returns the full ordered log of one session.
func (r *messageRepo) GetBySession(sessionID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
