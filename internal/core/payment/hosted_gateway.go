package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// HostedCheckoutGateway creates payment links at an external checkout
// provider (Stripe-style hosted checkout). The provider owns the
// payment UI and card handling; this gateway only exchanges order data
// for a link.
type HostedCheckoutGateway struct {
	apiURL     string
	apiKey     string
	successURL string
	client     *http.Client
}

func NewHostedCheckoutGateway(apiURL, apiKey, successURL string) *HostedCheckoutGateway {
	return &HostedCheckoutGateway{
		apiURL:     apiURL,
		apiKey:     apiKey,
		successURL: successURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (g *HostedCheckoutGateway) Name() string {
	return "hosted"
}

type checkoutSessionRequest struct {
	Reference     string             `json:"reference"`
	CustomerEmail string             `json:"customer_email,omitempty"`
	Currency      string             `json:"currency"`
	Amount        float64            `json:"amount"`
	LineItems     []checkoutLineItem `json:"line_items"`
	SuccessURL    string             `json:"success_url,omitempty"`
}

type checkoutLineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type checkoutSessionResponse struct {
	URL       string     `json:"url"`
	Status    string     `json:"status"`
	Reference string     `json:"reference"`
	ExpiresAt *time.Time `json:"expires_at"`
	PaidAt    *time.Time `json:"paid_at"`
}

// Process creates a hosted checkout session and returns its link.
func (g *HostedCheckoutGateway) Process(order *Order) (*ProcessResult, error) {
	lineItems := make([]checkoutLineItem, len(order.Items))
	for i, item := range order.Items {
		lineItems[i] = checkoutLineItem{
			Name:      item.ModuleName,
			UnitPrice: item.UnitPrice,
			Quantity:  1,
		}
	}

	reqBody := checkoutSessionRequest{
		Reference:     order.ID.String(),
		CustomerEmail: order.CustomerEmail,
		Currency:      order.Currency,
		Amount:        order.TotalAmount,
		LineItems:     lineItems,
		SuccessURL:    g.successURL,
	}

	var session checkoutSessionResponse
	if err := g.call(http.MethodPost, "/checkout/sessions", reqBody, &session); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.Printf("💳 Checkout link created for order %s", order.OrderNumber)

	return &ProcessResult{
		Success:     true,
		PaymentLink: session.URL,
		Message:     "Your checkout link is ready.",
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// GetStatus retrieves the checkout session state from the provider.
func (g *HostedCheckoutGateway) GetStatus(orderID string) (*PaymentStatus, error) {
	var session checkoutSessionResponse
	if err := g.call(http.MethodGet, "/checkout/sessions/"+orderID, nil, &session); err != nil {
		return nil, fmt.Errorf("failed to get checkout session: %w", err)
	}

	status := session.Status
	if status == "" {
		status = StatusPending
	}

	return &PaymentStatus{
		OrderID:     orderID,
		Status:      status,
		PaidAt:      session.PaidAt,
		PaymentLink: session.URL,
		Reference:   session.Reference,
	}, nil
}

// Cancel expires the checkout session at the provider.
func (g *HostedCheckoutGateway) Cancel(orderID string) error {
	if err := g.call(http.MethodPost, "/checkout/sessions/"+orderID+"/cancel", nil, nil); err != nil {
		return fmt.Errorf("failed to cancel checkout session: %w", err)
	}
	return nil
}

func (g *HostedCheckoutGateway) call(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, g.apiURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("checkout provider returned status %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}
