package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/aidevelo/aidevelo-ai-be/internal/core/payment"
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (r *fakeOrderRepo) Create(o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = "ORD-TEST-" + o.ID.String()[:8]
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(id uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) UpdatePayment(id uuid.UUID, status, paymentLink string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.PaymentStatus = status
		if paymentLink != "" {
			o.PaymentLink = paymentLink
		}
	}
	return nil
}

// fakeGateway returns a scripted link or error.
type fakeGateway struct {
	link      string
	err       error
	status    string
	lastOrder *payment.Order
}

func (g *fakeGateway) Process(order *payment.Order) (*payment.ProcessResult, error) {
	g.lastOrder = order
	if g.err != nil {
		return nil, g.err
	}
	return &payment.ProcessResult{Success: true, PaymentLink: g.link, Message: "ok"}, nil
}

func (g *fakeGateway) GetStatus(orderID string) (*payment.PaymentStatus, error) {
	if g.err != nil {
		return nil, g.err
	}
	status := g.status
	if status == "" {
		status = payment.StatusPending
	}
	return &payment.PaymentStatus{OrderID: orderID, Status: status}, nil
}

func (g *fakeGateway) Cancel(orderID string) error { return nil }
func (g *fakeGateway) Name() string                { return "fake" }

func TestCreateOrder_PricesServerSide(t *testing.T) {
	repo := newFakeOrderRepo()
	gateway := &fakeGateway{link: "https://pay.example.com/s/abc"}
	svc := NewCheckoutService(repo, gateway)

	order, result, err := svc.CreateOrder(&models.CreateOrderRequest{
		ModuleIDs:     []string{"phone", "chat", "social"},
		CustomerEmail: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 187.0, order.Subtotal)
	assert.Equal(t, 15.0, order.DiscountPercent)
	assert.InDelta(t, 158.95, order.TotalAmount, 1e-9)
	assert.Equal(t, "EUR", order.Currency)
	assert.Equal(t, payment.StatusPending, order.PaymentStatus)
	assert.Equal(t, "https://pay.example.com/s/abc", order.PaymentLink)

	require.NotNil(t, result)
	assert.True(t, result.Success)

	// The gateway sees the priced order, never client-sent amounts.
	require.NotNil(t, gateway.lastOrder)
	assert.InDelta(t, 158.95, gateway.lastOrder.TotalAmount, 1e-9)
	require.Len(t, gateway.lastOrder.Items, 3)
}

func TestCreateOrder_UnknownModulesRejected(t *testing.T) {
	svc := NewCheckoutService(newFakeOrderRepo(), &fakeGateway{})

	_, _, err := svc.CreateOrder(&models.CreateOrderRequest{
		ModuleIDs:     []string{"jetpack"},
		CustomerEmail: "ada@example.com",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrder_RequiresEmail(t *testing.T) {
	svc := NewCheckoutService(newFakeOrderRepo(), &fakeGateway{})

	_, _, err := svc.CreateOrder(&models.CreateOrderRequest{ModuleIDs: []string{"chat"}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrder_GatewayFailureKeepsOrderPending(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewCheckoutService(repo, &fakeGateway{err: errors.New("provider down")})

	order, _, err := svc.CreateOrder(&models.CreateOrderRequest{
		ModuleIDs:     []string{"chat"},
		CustomerEmail: "ada@example.com",
	})
	require.Error(t, err)

	// The order survives for payment retry.
	require.NotNil(t, order)
	stored, getErr := repo.GetByID(order.ID)
	require.NoError(t, getErr)
	assert.Equal(t, payment.StatusPending, stored.PaymentStatus)
	assert.Empty(t, stored.PaymentLink)
}

func TestGetOrder_SyncsGatewayStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	gateway := &fakeGateway{link: "https://pay.example.com/s/abc"}
	svc := NewCheckoutService(repo, gateway)

	created, _, err := svc.CreateOrder(&models.CreateOrderRequest{
		ModuleIDs:     []string{"chat"},
		CustomerEmail: "ada@example.com",
	})
	require.NoError(t, err)

	gateway.status = payment.StatusPaid

	order, status, err := svc.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPaid, status.Status)
	assert.Equal(t, payment.StatusPaid, order.PaymentStatus)
}

func TestGetOrder_NotFound(t *testing.T) {
	svc := NewCheckoutService(newFakeOrderRepo(), &fakeGateway{})

	_, _, err := svc.GetOrder(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
