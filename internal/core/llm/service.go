package llm

import (
	"context"
	"log"

	"github.com/aidevelo/aidevelo-ai-be/internal/shared/config"
)

// Service wraps the LLM provider for dependency injection.
type Service struct {
	provider Provider
}

// NewService creates the LLM service with the configured provider.
func NewService(cfg *config.Config) *Service {
	provider, err := NewProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create LLM provider: %v", err)
	}

	log.Printf("🤖 Using LLM provider: %s", provider.GetProviderName())
	return &Service{provider: provider}
}

// NewServiceWithProvider creates the service with a custom provider
// (for testing).
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

// GenerateReply runs one collaborator round-trip and parses the raw
// answer into a structured Reply. Parse failures degrade to the
// default reply; transport failures are returned to the caller, which
// substitutes the fallback reply.
func (s *Service) GenerateReply(ctx context.Context, systemPrompt string, history []Turn, userMessage string) (Reply, error) {
	raw, err := s.provider.GenerateResponse(ctx, systemPrompt, history, userMessage)
	if err != nil {
		return Reply{}, err
	}
	return ParseReply(raw), nil
}

// GetProviderName returns the active provider name.
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
