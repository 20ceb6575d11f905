package payment

import (
	"time"

	"github.com/google/uuid"
)

// Gateway defines the interface for checkout processing. The storefront
// delegates payment to a hosted provider; the manual gateway covers
// environments without one.
type Gateway interface {
	// Process initiates payment for an order.
	// For hosted: creates a checkout link at the provider.
	// For manual: records the order for sales follow-up.
	Process(order *Order) (*ProcessResult, error)

	// GetStatus retrieves the current payment status.
	GetStatus(orderID string) (*PaymentStatus, error)

	// Cancel cancels a pending payment.
	Cancel(orderID string) error

	// Name returns the gateway provider name.
	Name() string
}

// Order is the priced module selection handed to the gateway.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	OrderNumber   string      `json:"order_number"`
	CustomerEmail string      `json:"customer_email"`
	CustomerName  string      `json:"customer_name"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	DiscountPct   float64     `json:"discount_percent"`
	TotalAmount   float64     `json:"total_amount"`
	Currency      string      `json:"currency"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is one selected module on an order.
type OrderItem struct {
	ModuleID   string  `json:"module_id"`
	ModuleName string  `json:"module_name"`
	UnitPrice  float64 `json:"unit_price"`
}

// ProcessResult contains the result of payment initiation.
type ProcessResult struct {
	Success      bool       `json:"success"`
	PaymentLink  string     `json:"payment_link,omitempty"` // hosted
	Message      string     `json:"message"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Instructions string     `json:"instructions,omitempty"` // manual
}

// PaymentStatus represents the current status of a payment.
type PaymentStatus struct {
	OrderID     string     `json:"order_id"`
	Status      string     `json:"status"` // pending, paid, failed, cancelled, expired
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	PaymentLink string     `json:"payment_link,omitempty"`
	Reference   string     `json:"reference,omitempty"`
}

// Payment status constants
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)
