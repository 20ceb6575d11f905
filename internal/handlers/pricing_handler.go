package handlers

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/pricing"
	"github.com/gofiber/fiber/v2"
)

type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// GetModules godoc
// @Summary List purchasable modules
// @Description Static module catalog with discount tiers
// @Tags Pricing
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /pricing/modules [get]
func (h *PricingHandler) GetModules(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"modules": pricing.DefaultCatalog.Modules,
		"tiers":   pricing.DefaultCatalog.Tiers,
	})
}

type quoteRequest struct {
	ModuleIDs []string `json:"moduleIds"`
}

// CalculateQuote godoc
// @Summary Price a module selection
// @Description Compute subtotal, discount and total for selected modules
// @Tags Pricing
// @Accept json
// @Produce json
// @Param selection body quoteRequest true "Selected module ids"
// @Success 200 {object} map[string]interface{}
// @Router /pricing/quote [post]
func (h *PricingHandler) CalculateQuote(c *fiber.Ctx) error {
	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request")
	}

	// Unknown ids degrade to a partial (or zero) quote, never an error.
	quote := pricing.Calculate(req.ModuleIDs)

	return respondData(c, fiber.StatusOK, fiber.Map{
		"quote":          quote,
		"formattedTotal": pricing.FormatPrice(quote.Total),
		"formattedDiscount": fiber.Map{
			"percent": pricing.FormatDiscountPercent(quote.DiscountPercent),
			"amount":  pricing.FormatPrice(quote.DiscountAmount),
		},
	})
}
