package handlers

import (
	"context"

	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/aidevelo/aidevelo-ai-be/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// CreateSession godoc
// @Summary Open a chat session
// @Description Create a new conversation for the chat widget
// @Tags Chat
// @Accept json
// @Produce json
// @Param session body models.CreateSessionRequest true "Session to open"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /chat/sessions [post]
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	var req models.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request")
	}
	if req.AgentConfigID == "" {
		return respondError(c, fiber.StatusBadRequest, "agentConfigId is required")
	}

	session, err := h.chatService.CreateSession(c.IP(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, session)
}

// PostMessage godoc
// @Summary Post a chat message
// @Description Record a message; user messages trigger an agent reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body models.PostMessageRequest true "Message to post"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /chat/messages [post]
func (h *ChatHandler) PostMessage(c *fiber.Ctx) error {
	var req models.PostMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request")
	}
	if req.Message == "" {
		return respondError(c, fiber.StatusBadRequest, "message is required")
	}
	if req.Sender != models.SenderUser && req.Sender != models.SenderAgent {
		return respondError(c, fiber.StatusBadRequest, "sender must be 'user' or 'agent'")
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid sessionId")
	}

	// Agent messages are stored without triggering generation.
	if req.Sender == models.SenderAgent {
		if err := h.chatService.StoreAgentMessage(c.IP(), sessionID, req.Message); err != nil {
			return respondServiceError(c, err)
		}
		return respondData(c, fiber.StatusOK, fiber.Map{"message": "Message stored"})
	}

	reply, err := h.chatService.HandleVisitorMessage(context.Background(), c.IP(), sessionID, req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusOK, reply)
}

// EndSession godoc
// @Summary End a chat session
// @Description Set the session's terminal timestamp
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/sessions/{id}/end [post]
func (h *ChatHandler) EndSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid session id")
	}

	if err := h.chatService.EndSession(sessionID); err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Session ended"})
}

// GetMessages godoc
// @Summary Get the conversation log
// @Description Full ordered message log of one session
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /chat/sessions/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid session id")
	}

	messages, err := h.chatService.GetSessionMessages(sessionID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondData(c, fiber.StatusOK, messages)
}
