package repositories

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(order *models.Order) error
	GetByID(id uuid.UUID) (*models.Order, error)
	UpdatePayment(id uuid.UUID, status, paymentLink string) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepo {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) UpdatePayment(id uuid.UUID, status, paymentLink string) error {
	updates := map[string]interface{}{"payment_status": status}
	if paymentLink != "" {
		updates["payment_link"] = paymentLink
	}
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}
