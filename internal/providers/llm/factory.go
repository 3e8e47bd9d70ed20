package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/haven/internal/config"
	"github.com/sandevgo/haven/internal/core"
	"github.com/sandevgo/haven/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
// The model argument lets callers run the main and classifier models against
// the same provider account.
func NewProvider(ctx context.Context, cfg *config.LLMConfig, model string) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, model), nil
	case "anthropic":
		return NewAnthropic(cfg.AnthropicAPIKey, model), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, model), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, model), nil
	case "custom":
		return NewCustomOpenAI(cfg.CustomBaseURL, cfg.CustomAPIKey, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
