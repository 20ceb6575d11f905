package repositories

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentConfigRepo interface {
	GetByID(id uuid.UUID) (*models.AgentConfig, error)
}

type agentConfigRepo struct {
	db *gorm.DB
}

func NewAgentConfigRepo(db *gorm.DB) AgentConfigRepo {
	return &agentConfigRepo{db: db}
}

// GetByID loads an active agent configuration with its knowledge base.
func (r *agentConfigRepo) GetByID(id uuid.UUID) (*models.AgentConfig, error) {
	var cfg models.AgentConfig
	err := r.db.Preload("KnowledgeBase").
		Where("id = ? AND is_active = true", id).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
