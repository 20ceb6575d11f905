package handlers

import (
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/aidevelo/aidevelo-ai-be/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead godoc
// @Summary Submit a contact form
// @Description Store a lead and assign its triage score
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body models.CreateLeadRequest true "Contact form payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var req models.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request")
	}

	lead, err := h.leadService.CreateLead(&req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, lead)
}
