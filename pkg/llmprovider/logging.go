package llmprovider

import (
	"context"

	"nl-dates/pkg/log"
)

// loggingProvider records every exchange with the wrapped provider.
// It makes exactly one call per request: no retry, no fallback.
type loggingProvider struct {
	Provider
	logger log.Logger
}

// WithLogging wraps p so that each GenerateContent call is logged.
func WithLogging(p Provider, logger log.Logger) Provider {
	return &loggingProvider{Provider: p, logger: logger}
}

// GenerateContent delegates to the wrapped provider and logs the outcome
func (p *loggingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := p.Provider.GenerateContent(ctx, req)
	if err != nil {
		p.logFailure(ctx, err)
		return nil, err
	}
	p.logSuccess(ctx, resp)
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (p *loggingProvider) logSuccess(ctx context.Context, resp *Response) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	p.logger.Info(ctx, "LLM generation successful",
		"provider", p.Name(),
		"model", p.Model(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (p *loggingProvider) logFailure(ctx context.Context, err error) {
	p.logger.Warn(ctx, "LLM generation failed",
		"provider", p.Name(),
		"model", p.Model(),
		"error", err.Error(),
	)
}
