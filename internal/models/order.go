package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order is a checkout of selected modules, priced server-side by the
// pricing engine before payment is initiated.
type Order struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrderNumber     string         `gorm:"type:text;uniqueIndex" json:"order_number"`
	CustomerEmail   string         `gorm:"type:text;not null" json:"customer_email"`
	CustomerName    string         `gorm:"type:text" json:"customer_name,omitempty"`
	Items           datatypes.JSON `gorm:"type:jsonb;not null" json:"items"` // [{module_id, module_name, unit_price}]
	Subtotal        float64        `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	DiscountPercent float64        `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	DiscountAmount  float64        `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TotalAmount     float64        `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
	Currency        string         `gorm:"type:text;default:'EUR'" json:"currency"`
	PaymentStatus   string         `gorm:"type:text;default:'pending'" json:"payment_status"`
	PaymentLink     string         `gorm:"type:text" json:"payment_link,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), o.ID.String()[:8])
	}
	return nil
}

// CreateOrderRequest is the checkout payload. Prices come from the
// catalog, never from the client.
type CreateOrderRequest struct {
	ModuleIDs     []string `json:"moduleIds"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerName  string   `json:"customerName,omitempty"`
}
