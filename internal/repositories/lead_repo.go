package repositories

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"gorm.io/gorm"
)

type LeadRepo interface {
	Create(lead *models.Lead) error
	GetRecent(limit int) ([]models.Lead, error)
}

type leadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) LeadRepo {
	return &leadRepo{db: db}
}

func (r *leadRepo) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepo) GetRecent(limit int) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Order("created_at DESC").Limit(limit).Find(&leads).Error
	return leads, err
}
