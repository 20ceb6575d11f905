package payment

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManualGateway records orders for the sales team to settle by invoice.
// Used when no hosted checkout provider is configured.
type ManualGateway struct {
	db *gorm.DB
}

func NewManualGateway(db *gorm.DB) *ManualGateway {
	return &ManualGateway{db: db}
}

func (g *ManualGateway) Name() string {
	return "manual"
}

// Process creates a pending payment record; sales follows up by email.
func (g *ManualGateway) Process(order *Order) (*ProcessResult, error) {
	itemsJSON, _ := json.Marshal(order.Items)

	record := map[string]interface{}{
		"id":             uuid.New(),
		"order_id":       order.ID,
		"order_number":   order.OrderNumber,
		"customer_email": order.CustomerEmail,
		"customer_name":  order.CustomerName,
		"items":          string(itemsJSON),
		"total_amount":   order.TotalAmount,
		"currency":       order.Currency,
		"status":         StatusPending,
		"created_at":     time.Now(),
	}

	if err := g.db.Table("payment_handoffs").Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment handoff: %w", err)
	}

	log.Printf("💳 Manual payment handoff created for order %s", order.OrderNumber)

	return &ProcessResult{
		Success:      true,
		Message:      "Your order has been received. Our team will contact you with an invoice.",
		Instructions: fmt.Sprintf("Order %s: %.2f %s. An invoice will be sent to %s.", order.OrderNumber, order.TotalAmount, order.Currency, order.CustomerEmail),
	}, nil
}

// GetStatus reads the handoff record status.
func (g *ManualGateway) GetStatus(orderID string) (*PaymentStatus, error) {
	var record struct {
		Status    string
		UpdatedAt *time.Time
	}

	err := g.db.Table("payment_handoffs").
		Select("status", "updated_at").
		Where("order_id = ?", orderID).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &PaymentStatus{OrderID: orderID, Status: StatusPending}, nil
		}
		return nil, err
	}

	status := &PaymentStatus{OrderID: orderID, Status: record.Status}
	if record.Status == StatusPaid {
		status.PaidAt = record.UpdatedAt
	}
	return status, nil
}

// Cancel marks the handoff cancelled.
func (g *ManualGateway) Cancel(orderID string) error {
	return g.db.Table("payment_handoffs").
		Where("order_id = ?", orderID).
		Update("status", StatusCancelled).Error
}
