package payment

import (
	"fmt"
	"log"

	"github.com/aidevelo/aidevelo-ai-be/internal/shared/config"
	"gorm.io/gorm"
)

// NewGateway creates a payment gateway based on configuration.
func NewGateway(cfg *config.Config, db *gorm.DB) (Gateway, error) {
	switch cfg.PaymentMode {
	case "manual":
		log.Println("💳 Using Manual Payment Gateway")
		return NewManualGateway(db), nil

	case "hosted":
		if cfg.CheckoutAPIURL == "" || cfg.CheckoutAPIKey == "" {
			return nil, fmt.Errorf("CHECKOUT_API_URL and CHECKOUT_API_KEY are required for hosted payment mode")
		}
		log.Println("💳 Using Hosted Checkout Gateway")
		return NewHostedCheckoutGateway(cfg.CheckoutAPIURL, cfg.CheckoutAPIKey, cfg.CheckoutSuccessURL), nil

	default:
		log.Printf("⚠️ Unknown payment mode '%s', defaulting to manual", cfg.PaymentMode)
		return NewManualGateway(db), nil
	}
}
