package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/aidevelo/aidevelo-ai-be/internal/core/payment"
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/aidevelo/aidevelo-ai-be/internal/pricing"
	"github.com/aidevelo/aidevelo-ai-be/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CheckoutService converts a module selection into a priced order and
// initiates payment. The server is authoritative over prices: the
// client sends module ids only, the pricing engine does the rest.
type CheckoutService struct {
	orders  repositories.OrderRepo
	gateway payment.Gateway
}

func NewCheckoutService(orders repositories.OrderRepo, gateway payment.Gateway) *CheckoutService {
	return &CheckoutService{orders: orders, gateway: gateway}
}

// CreateOrder prices the selection, stores the order and initiates
// payment with the configured gateway.
func (s *CheckoutService) CreateOrder(req *models.CreateOrderRequest) (*models.Order, *payment.ProcessResult, error) {
	if req.CustomerEmail == "" {
		return nil, nil, fmt.Errorf("%w: customerEmail is required", ErrValidation)
	}

	quote := pricing.Calculate(req.ModuleIDs)
	if len(quote.SelectedModules) == 0 {
		return nil, nil, fmt.Errorf("%w: no valid modules selected", ErrValidation)
	}

	items := make([]payment.OrderItem, len(quote.SelectedModules))
	for i, m := range quote.SelectedModules {
		items[i] = payment.OrderItem{
			ModuleID:   m.ID,
			ModuleName: m.Name,
			UnitPrice:  m.Price,
		}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		Items:           datatypes.JSON(itemsJSON),
		Subtotal:        quote.Subtotal,
		DiscountPercent: quote.DiscountPercent,
		DiscountAmount:  quote.DiscountAmount,
		TotalAmount:     quote.Total,
		Currency:        "EUR",
		PaymentStatus:   payment.StatusPending,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, nil, err
	}

	result, err := s.gateway.Process(&payment.Order{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		Items:         items,
		Subtotal:      order.Subtotal,
		DiscountPct:   order.DiscountPercent,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		CreatedAt:     order.CreatedAt,
	})
	if err != nil {
		// The order stays pending; payment can be re-initiated.
		log.Printf("❌ Payment initiation failed for order %s: %v", order.OrderNumber, err)
		return order, nil, err
	}

	if result.PaymentLink != "" {
		order.PaymentLink = result.PaymentLink
		if err := s.orders.UpdatePayment(order.ID, payment.StatusPending, result.PaymentLink); err != nil {
			log.Printf("⚠️ Failed to store payment link for order %s: %v", order.OrderNumber, err)
		}
	}

	log.Printf("✅ Order %s created: %s", order.OrderNumber, pricing.FormatPrice(order.TotalAmount))
	return order, result, nil
}

// GetOrder loads an order together with its current payment status.
func (s *CheckoutService) GetOrder(id uuid.UUID) (*models.Order, *payment.PaymentStatus, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, nil, err
	}

	status, err := s.gateway.GetStatus(id.String())
	if err != nil {
		// Gateway unavailable; report the stored status.
		status = &payment.PaymentStatus{OrderID: id.String(), Status: order.PaymentStatus}
	} else if status.Status != order.PaymentStatus {
		if err := s.orders.UpdatePayment(order.ID, status.Status, ""); err == nil {
			order.PaymentStatus = status.Status
		}
	}

	return order, status, nil
}
