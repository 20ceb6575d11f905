package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aidevelo/aidevelo-ai-be/internal/core/llm"
	"github.com/aidevelo/aidevelo-ai-be/internal/core/ratelimit"
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/aidevelo/aidevelo-ai-be/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversation-history and quota policy for the chat protocol.
const (
	historyLimit = 10

	sessionRateLimit  = 10
	messageRateLimit  = 60
	rateLimitWindow   = 60 * time.Second
	defaultLLMTimeout = 30 * time.Second
)

// ChatService mediates one visitor conversation: session lifecycle,
// message recording, request shaping to the LLM and action dispatch
// back to the caller.
type ChatService struct {
	sessions   repositories.SessionRepo
	messages   repositories.MessageRepo
	agents     repositories.AgentConfigRepo
	llm        *llm.Service
	limiter    ratelimit.Limiter
	llmTimeout time.Duration
}

func NewChatService(
	sessions repositories.SessionRepo,
	messages repositories.MessageRepo,
	agents repositories.AgentConfigRepo,
	llmService *llm.Service,
	limiter ratelimit.Limiter,
	llmTimeout time.Duration,
) *ChatService {
	if llmTimeout <= 0 {
		llmTimeout = defaultLLMTimeout
	}
	return &ChatService{
		sessions:   sessions,
		messages:   messages,
		agents:     agents,
		llm:        llmService,
		limiter:    limiter,
		llmTimeout: llmTimeout,
	}
}

// CreateSession opens a new conversation for the widget. clientKey
// identifies the calling client (IP) for rate limiting.
func (s *ChatService) CreateSession(clientKey string, req *models.CreateSessionRequest) (*models.ChatSession, error) {
	if !s.limiter.Allow(clientKey+":chat_session", sessionRateLimit, rateLimitWindow) {
		return nil, ErrRateLimited
	}

	agentConfigID, err := uuid.Parse(req.AgentConfigID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid agentConfigId", ErrValidation)
	}

	session := &models.ChatSession{
		AgentConfigID: agentConfigID,
		VisitorID:     req.VisitorID,
		VisitorEmail:  req.VisitorEmail,
		VisitorName:   req.VisitorName,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	return session, nil
}

// HandleVisitorMessage runs one protocol turn: rate limit, record the
// visitor message, rebuild bounded history, call the collaborator and
// record + return its reply. Collaborator failures never surface as
// errors; the visitor always gets a conversational reply.
func (s *ChatService) HandleVisitorMessage(ctx context.Context, clientKey string, sessionID uuid.UUID, text string) (*models.ChatReply, error) {
	if !s.limiter.Allow(clientKey+":chat_message", messageRateLimit, rateLimitWindow) {
		return nil, ErrRateLimited
	}

	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, err
	}

	agentCfg, err := s.agents.GetByID(session.AgentConfigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agent config %s", ErrNotFound, session.AgentConfigID)
		}
		return nil, err
	}

	// History is rebuilt before the new message is recorded so the
	// message is not passed to the provider twice.
	history, err := s.buildHistory(sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.appendMessage(sessionID, models.SenderUser, text, nil); err != nil {
		return nil, err
	}

	reply := s.generateReply(ctx, agentCfg, history, text)

	if err := s.appendMessage(sessionID, models.SenderAgent, reply.Message, &reply.Action); err != nil {
		return nil, err
	}

	if reply.Action.Type == llm.ActionCaptureLead {
		if err := s.sessions.MarkLeadCaptured(sessionID); err != nil {
			log.Printf("⚠️ Failed to mark lead captured for session %s: %v", sessionID, err)
		}
	}

	return toChatReply(sessionID, reply), nil
}

// StoreAgentMessage records an agent-sent turn without triggering
// generation (sender "agent" on the messages endpoint).
func (s *ChatService) StoreAgentMessage(clientKey string, sessionID uuid.UUID, text string) error {
	if !s.limiter.Allow(clientKey+":chat_message", messageRateLimit, rateLimitWindow) {
		return ErrRateLimited
	}

	if _, err := s.sessions.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return err
	}

	return s.appendMessage(sessionID, models.SenderAgent, text, nil)
}

// EndSession sets the terminal timestamp. Caller-driven only; no code
// path invokes this automatically unless the idle sweep is configured.
func (s *ChatService) EndSession(sessionID uuid.UUID) error {
	if _, err := s.sessions.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return err
	}
	return s.sessions.End(sessionID, time.Now())
}

// GetSessionMessages returns the full ordered conversation log.
func (s *ChatService) GetSessionMessages(sessionID uuid.UUID) ([]models.ChatMessage, error) {
	if _, err := s.sessions.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, err
	}
	return s.messages.GetBySession(sessionID)
}

// generateReply calls the collaborator with the grounding prompt and
// bounded history. Any provider failure (timeout, transport, provider
// error) degrades to the safe fallback reply with no action.
func (s *ChatService) generateReply(ctx context.Context, agentCfg *models.AgentConfig, history []llm.Turn, text string) llm.Reply {
	var kb llm.KnowledgeBase
	if agentCfg.KnowledgeBase != nil {
		kb = agentCfg.KnowledgeBase.ToGrounding(agentCfg.Tone)
	} else {
		kb = llm.KnowledgeBase{Tone: agentCfg.Tone}
	}
	systemPrompt := llm.BuildSystemPrompt(kb)

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.llm.GenerateReply(llmCtx, systemPrompt, history, text)
	if err != nil {
		log.Printf("❌ AI error: %v", err)
		return llm.FallbackReply()
	}
	return reply
}

// buildHistory maps the most recent messages (oldest-first) into
// role-tagged turns. Context only, never re-persisted.
func (s *ChatService) buildHistory(sessionID uuid.UUID) ([]llm.Turn, error) {
	recent, err := s.messages.GetRecent(sessionID, historyLimit)
	if err != nil {
		return nil, err
	}

	turns := make([]llm.Turn, len(recent))
	for i, m := range recent {
		turns[i] = llm.Turn{Role: m.Sender, Content: m.Message}
	}
	return turns, nil
}

// appendMessage writes one turn to the append-only log.
func (s *ChatService) appendMessage(sessionID uuid.UUID, sender, text string, action *llm.Action) error {
	msg := &models.ChatMessage{
		SessionID: sessionID,
		Sender:    sender,
		Message:   text,
	}

	if action != nil && action.Type != llm.ActionNone {
		raw, err := json.Marshal(action)
		if err == nil {
			msg.ActionData = datatypes.JSON(raw)
		}
	}

	return s.messages.Create(msg)
}

// toChatReply shapes the structured reply for the transport layer. The
// caller reacts to the action tag; the protocol only signals it.
func toChatReply(sessionID uuid.UUID, reply llm.Reply) *models.ChatReply {
	out := &models.ChatReply{
		Message:          reply.Message,
		IsActionRequired: reply.IsActionRequired,
		SessionID:        sessionID.String(),
	}

	switch reply.Action.Type {
	case llm.ActionBookAppointment:
		out.ActionType = string(reply.Action.Type)
		out.ActionData = reply.Action.BookAppointment
	case llm.ActionCaptureLead:
		out.ActionType = string(reply.Action.Type)
		out.ActionData = reply.Action.CaptureLead
	case llm.ActionEscalateHuman:
		out.ActionType = string(reply.Action.Type)
		out.ActionData = reply.Action.EscalateHuman
	}

	return out
}
