package handlers

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/aidevelo/aidevelo-ai-be/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateOrder godoc
// @Summary Checkout selected modules
// @Description Price the selection server-side and initiate payment
// @Tags Checkout
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /checkout/orders [post]
func (h *CheckoutHandler) CreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request")
	}

	order, result, err := h.checkoutService.CreateOrder(&req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{
		"order":   order,
		"payment": result,
	})
}

// GetOrder godoc
// @Summary Get an order
// @Description Order details with current payment status
// @Tags Checkout
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /checkout/orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid order id")
	}

	order, status, err := h.checkoutService.GetOrder(orderID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"order":  order,
		"status": status,
	})
}

// GetOrderQR godoc
// @Summary Payment link as QR code
// @Description Render the order's payment link as a PNG QR code
// @Tags Checkout
// @Produce png
// @Param id path string true "Order ID"
// @Success 200 {string} binary "PNG image"
// @Failure 404 {object} map[string]interface{}
// @Router /checkout/orders/{id}/qr [get]
func (h *CheckoutHandler) GetOrderQR(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid order id")
	}

	order, _, err := h.checkoutService.GetOrder(orderID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if order.PaymentLink == "" {
		return respondError(c, fiber.StatusNotFound, "order has no payment link")
	}

	png, err := qrcode.Encode(order.PaymentLink, qrcode.Medium, 256)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "failed to generate QR code")
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", "inline; filename=payment-qr.png")
	return c.Send(png)
}
