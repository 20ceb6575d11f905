package llm

import (
	"context"
	"fmt"

	"github.com/aidevelo/aidevelo-ai-be/internal/shared/config"
)

// Turn is one prior exchange in a conversation, passed to the provider
// as context. Role is "user" or "agent".
type Turn struct {
	Role    string
	Content string
}

// Provider generates one conversational reply given a system prompt, a
// bounded history and the new visitor message. The raw reply is
// expected to be the JSON shape parsed by ParseReply.
type Provider interface {
	GenerateResponse(ctx context.Context, systemPrompt string, history []Turn, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType for the factory
type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderGroq     ProviderType = "groq"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderClaude   ProviderType = "claude"
)

// NewProvider creates the configured LLM provider.
func NewProvider(cfg *config.Config) (Provider, error) {
	model := cfg.LLMModel

	switch ProviderType(cfg.LLMProvider) {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, model), nil

	case ProviderGroq:
		if cfg.GroqKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required")
		}
		return NewGroqProvider(cfg.GroqKey, model), nil

	case ProviderDeepSeek:
		if cfg.DeepSeekKey == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY is required")
		}
		return NewDeepSeekProvider(cfg.DeepSeekKey, model), nil

	case ProviderClaude:
		if cfg.ClaudeKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is required")
		}
		return NewClaudeProvider(cfg.ClaudeKey, model), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.LLMProvider)
	}
}
