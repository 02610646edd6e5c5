package llmprovider

import (
	"context"
	"fmt"
	"net/http"

	"nl-dates/config"
	"nl-dates/pkg/gemini"
	"nl-dates/pkg/openai"
)

// NewProvider creates the Provider selected by cfg.Provider.
// A missing credential is reported as ErrMissingAPIKey, an unsupported
// name as ErrUnknownProvider.
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return newOpenAICompatible(config.ProviderOpenAI, cfg, openai.DefaultBaseURL, openai.DefaultModel)

	case config.ProviderDeepSeek:
		return newOpenAICompatible(config.ProviderDeepSeek, cfg, DeepSeekBaseURL, DeepSeekModel)

	case config.ProviderQwen, config.ProviderAlibaba:
		return newOpenAICompatible(config.ProviderQwen, cfg, QwenBaseURL, QwenModel)

	case config.ProviderGemini:
		if cfg.APIKey == "" && cfg.CredentialsPath == "" {
			return nil, fmt.Errorf("provider %s: %w", cfg.Provider, ErrMissingAPIKey)
		}
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:          cfg.APIKey,
			CredentialsPath: cfg.CredentialsPath,
			Model:           cfg.Model,
			APIURL:          cfg.BaseURL,
			HTTPClient:      timeoutClient(cfg),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}

func newOpenAICompatible(name string, cfg config.LLMConfig, baseURL, model string) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: %w", name, ErrMissingAPIKey)
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}

	client, err := openai.New(openai.Config{
		APIKey:     cfg.APIKey,
		Model:      model,
		BaseURL:    baseURL,
		HTTPClient: timeoutClient(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewOpenAIAdapter(name, client), nil
}

// timeoutClient returns nil when no timeout is configured so each client
// falls back to its own default.
func timeoutClient(cfg config.LLMConfig) *http.Client {
	if cfg.Timeout <= 0 {
		return nil
	}
	return &http.Client{Timeout: cfg.Timeout}
}
