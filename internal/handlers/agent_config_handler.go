package handlers

import (
	"errors"

	"github.com/aidevelo/aidevelo-ai-be/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentConfigHandler struct {
	agentConfigRepo repositories.AgentConfigRepo
}

func NewAgentConfigHandler(agentConfigRepo repositories.AgentConfigRepo) *AgentConfigHandler {
	return &AgentConfigHandler{agentConfigRepo: agentConfigRepo}
}

// GetAgentConfig godoc
// @Summary Get an agent configuration
// @Description Agent configuration with its knowledge base, used by widget bootstrap
// @Tags AgentConfigs
// @Produce json
// @Param id path string true "Agent config ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /agent-configs/{id} [get]
func (h *AgentConfigHandler) GetAgentConfig(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid agent config id")
	}

	cfg, err := h.agentConfigRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "agent config not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return respondData(c, fiber.StatusOK, cfg)
}
