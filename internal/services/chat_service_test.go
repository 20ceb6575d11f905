package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aidevelo/aidevelo-ai-be/internal/core/llm"
	"github.com/aidevelo/aidevelo-ai-be/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- in-memory fakes ---

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.ChatSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*models.ChatSession)}
}

func (r *fakeSessionRepo) Create(s *models.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.StartedAt = time.Now()
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) GetByID(id uuid.UUID) (*models.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) MarkLeadCaptured(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.IsLeadCaptured = true
	}
	return nil
}

func (r *fakeSessionRepo) End(id uuid.UUID, endedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok && s.EndedAt == nil {
		s.EndedAt = &endedAt
	}
	return nil
}

func (r *fakeSessionRepo) EndIdleBefore(cutoff time.Time) (int64, error) {
	return 0, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

func (r *fakeMessageRepo) Create(m *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) GetRecent(sessionID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	all, _ := r.GetBySession(sessionID)
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (r *fakeMessageRepo) GetBySession(sessionID uuid.UUID) ([]models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeAgentRepo struct {
	configs map[uuid.UUID]*models.AgentConfig
}

func (r *fakeAgentRepo) GetByID(id uuid.UUID) (*models.AgentConfig, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cfg, nil
}

// fakeProvider returns a scripted raw answer or error.
type fakeProvider struct {
	mu          sync.Mutex
	raw         string
	err         error
	lastHistory []llm.Turn
	lastMessage string
}

func (p *fakeProvider) GenerateResponse(ctx context.Context, systemPrompt string, history []llm.Turn, userMessage string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastHistory = history
	p.lastMessage = userMessage
	return p.raw, p.err
}

func (p *fakeProvider) GetProviderName() string { return "fake" }

// allowAll never limits; denyAll always limits.
type allowAll struct{}

func (allowAll) Allow(string, int, time.Duration) bool { return true }

type denyAll struct{}

func (denyAll) Allow(string, int, time.Duration) bool { return false }

// --- fixture ---

type chatFixture struct {
	svc      *ChatService
	sessions *fakeSessionRepo
	messages *fakeMessageRepo
	provider *fakeProvider
	agentID  uuid.UUID
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()

	agentID := uuid.New()
	agents := &fakeAgentRepo{configs: map[uuid.UUID]*models.AgentConfig{
		agentID: {ID: agentID, Name: "Web Agent", Tone: "friendly"},
	}}
	sessions := newFakeSessionRepo()
	messages := &fakeMessageRepo{}
	provider := &fakeProvider{raw: `{"message": "Hello from the agent", "isActionRequired": false}`}

	svc := NewChatService(
		sessions, messages, agents,
		llm.NewServiceWithProvider(provider),
		allowAll{},
		time.Second,
	)
	return &chatFixture{svc: svc, sessions: sessions, messages: messages, provider: provider, agentID: agentID}
}

func (f *chatFixture) openSession(t *testing.T) *models.ChatSession {
	t.Helper()
	session, err := f.svc.CreateSession("1.2.3.4", &models.CreateSessionRequest{
		AgentConfigID: f.agentID.String(),
	})
	require.NoError(t, err)
	return session
}

// --- tests ---

func TestCreateSession(t *testing.T) {
	f := newChatFixture(t)

	session := f.openSession(t)

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, f.agentID, session.AgentConfigID)
	assert.False(t, session.IsLeadCaptured)
	assert.Nil(t, session.EndedAt)
}

func TestCreateSession_InvalidAgentConfigID(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.svc.CreateSession("1.2.3.4", &models.CreateSessionRequest{AgentConfigID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateSession_RateLimited(t *testing.T) {
	f := newChatFixture(t)
	f.svc.limiter = denyAll{}

	_, err := f.svc.CreateSession("1.2.3.4", &models.CreateSessionRequest{AgentConfigID: f.agentID.String()})
	assert.ErrorIs(t, err, ErrRateLimited)
	// Nothing persisted when the quota check fails.
	assert.Empty(t, f.sessions.sessions)
}

func TestHandleVisitorMessage_AppendsExactlyTwoMessages(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)

	reply, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "What do you offer?")
	require.NoError(t, err)

	assert.Equal(t, "Hello from the agent", reply.Message)
	assert.False(t, reply.IsActionRequired)
	assert.Equal(t, session.ID.String(), reply.SessionID)

	log, _ := f.messages.GetBySession(session.ID)
	require.Len(t, log, 2)
	assert.Equal(t, models.SenderUser, log[0].Sender)
	assert.Equal(t, "What do you offer?", log[0].Message)
	assert.Equal(t, models.SenderAgent, log[1].Sender)
	assert.Equal(t, "Hello from the agent", log[1].Message)
}

func TestHandleVisitorMessage_SessionNotFound(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", uuid.New(), "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandleVisitorMessage_CollaboratorFailureFallsBack(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)
	f.provider.err = errors.New("connection refused")

	reply, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "hi")
	require.NoError(t, err, "provider failures must not surface as errors")

	assert.Equal(t, llm.FallbackReplyText, reply.Message)
	assert.False(t, reply.IsActionRequired)

	// The fallback is still recorded as the agent turn.
	log, _ := f.messages.GetBySession(session.ID)
	require.Len(t, log, 2)
	assert.Equal(t, llm.FallbackReplyText, log[1].Message)
}

func TestHandleVisitorMessage_MalformedReplyFallsBackToDefault(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)
	f.provider.raw = "I forgot to answer in JSON"

	reply, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultReplyText, reply.Message)
	assert.False(t, reply.IsActionRequired)
}

func TestHandleVisitorMessage_CaptureLeadFlipsSessionFlag(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)
	f.provider.raw = `{"message": "Noted!", "isActionRequired": true, "actionType": "capture_lead", "actionData": {"email": "ada@example.com"}}`

	reply, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "my email is ada@example.com")
	require.NoError(t, err)

	assert.True(t, reply.IsActionRequired)
	assert.Equal(t, "capture_lead", reply.ActionType)

	updated, err := f.sessions.GetByID(session.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsLeadCaptured)

	// Action payload is stored on the agent turn.
	log, _ := f.messages.GetBySession(session.ID)
	require.Len(t, log, 2)
	assert.NotEmpty(t, log[1].ActionData)
}

func TestHandleVisitorMessage_HistoryIsBoundedAndOldestFirst(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)

	for i := 0; i < 8; i++ {
		_, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "ping")
		require.NoError(t, err)
	}

	// 16 stored turns; the 17th request must see only the last 10.
	_, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "final")
	require.NoError(t, err)

	assert.Len(t, f.provider.lastHistory, 10)
	assert.Equal(t, "final", f.provider.lastMessage)
	// History excludes the new message and ends with the latest agent turn.
	last := f.provider.lastHistory[len(f.provider.lastHistory)-1]
	assert.Equal(t, models.SenderAgent, last.Role)
}

func TestHandleVisitorMessage_RateLimited(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)
	f.svc.limiter = denyAll{}

	_, err := f.svc.HandleVisitorMessage(context.Background(), "1.2.3.4", session.ID, "hi")
	assert.ErrorIs(t, err, ErrRateLimited)

	// Checked before any persistence.
	log, _ := f.messages.GetBySession(session.ID)
	assert.Empty(t, log)
}

func TestStoreAgentMessage(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)

	err := f.svc.StoreAgentMessage("1.2.3.4", session.ID, "Welcome!")
	require.NoError(t, err)

	log, _ := f.messages.GetBySession(session.ID)
	require.Len(t, log, 1)
	assert.Equal(t, models.SenderAgent, log[0].Sender)
}

func TestStoreAgentMessage_SessionNotFound(t *testing.T) {
	f := newChatFixture(t)

	err := f.svc.StoreAgentMessage("1.2.3.4", uuid.New(), "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEndSession(t *testing.T) {
	f := newChatFixture(t)
	session := f.openSession(t)

	require.NoError(t, f.svc.EndSession(session.ID))

	ended, err := f.sessions.GetByID(session.ID)
	require.NoError(t, err)
	assert.True(t, ended.IsEnded())
}

func TestEndSession_NotFound(t *testing.T) {
	f := newChatFixture(t)

	err := f.svc.EndSession(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
