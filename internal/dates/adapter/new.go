package adapter

import (
	"context"
	"fmt"

	"nl-dates/config"
	"nl-dates/internal/dates"
	"nl-dates/pkg/llmprovider"
	"nl-dates/pkg/log"
)

// Adapter is the language-model backed dates.Client.
// It is safe for concurrent use when its provider is.
type Adapter struct {
	l           log.Logger
	provider    llmprovider.Provider
	temperature float64
}

var _ dates.Client = (*Adapter)(nil)

// New creates an Adapter over an already built provider.
func New(l log.Logger, provider llmprovider.Provider) *Adapter {
	return &Adapter{
		l:        l,
		provider: provider,
	}
}

// NewFromConfig builds the provider described by cfg and wraps it.
// Any failure to build it, a missing credential included, is a
// *dates.ConfigurationError.
func NewFromConfig(ctx context.Context, l log.Logger, cfg config.LLMConfig) (*Adapter, error) {
	p, err := llmprovider.NewProvider(ctx, cfg)
	if err != nil {
		return nil, &dates.ConfigurationError{
			Reason: fmt.Sprintf("cannot build %q language model client", providerName(cfg)),
			Err:    err,
		}
	}

	a := New(l, llmprovider.WithLogging(p, l))
	a.temperature = cfg.Temperature
	return a, nil
}

// Factory returns a dates.ClientFactory that resolves its configuration
// from the environment on each call.
func Factory(l log.Logger) dates.ClientFactory {
	return func(ctx context.Context) (dates.Client, error) {
		cfg, err := config.LoadLLM()
		if err != nil {
			return nil, &dates.ConfigurationError{Reason: "invalid language model configuration", Err: err}
		}
		a, err := NewFromConfig(ctx, l, cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

// Provider returns the underlying provider.
func (a *Adapter) Provider() llmprovider.Provider {
	return a.provider
}

func providerName(cfg config.LLMConfig) string {
	if cfg.Provider == "" {
		return config.ProviderOpenAI
	}
	return cfg.Provider
}
