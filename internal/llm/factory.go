package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/careerstu/careerstu/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// ErrNotConfigured signals that no LLM provider is configured in the
// environment. Callers degrade gracefully rather than fail.
var ErrNotConfigured = fmt.Errorf("no LLM provider configured")

// NewProviderFromEnv builds a Provider from environment configuration.
// CAREERSTU_LLM_PROVIDER takes priority; otherwise standard API key
// variables are probed. Returns ErrNotConfigured when neither is set.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	if os.Getenv("CAREERSTU_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return NewProvider(ctx, cfg, eventRepo)
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, ErrNotConfigured
	}
	return NewProvider(ctx, cfg, eventRepo)
}
