// Package nldates resolves natural-language date expressions with a language model.
//
// A call uses the client passed with WithClient, or else the process-wide
// default client. The default is built from the environment (OPENAI_API_KEY,
// LLM_PROVIDER, LLM_API_KEY, ...) the first time it is needed, and can be
// replaced with SetDefaultClient. Tests that register a default should clear
// it again with SetDefaultClient(nil).
package nldates

import (
	"context"

	"nl-dates/config"
	"nl-dates/internal/dates"
	"nl-dates/internal/dates/adapter"
	"nl-dates/internal/dates/usecase"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/log"
)

type (
	// Client performs the model exchange; any implementation may be registered.
	Client     = dates.Client
	Extraction = dates.Extraction

	ConfigurationError = dates.ConfigurationError
	AdapterError       = dates.AdapterError
	DateParseError     = dates.DateParseError
)

var (
	defaultClient = dates.NewDefaultClient(adapter.Factory(log.NewNop()))
	uc            = usecase.New(log.NewNop(), defaultClient, localCalendar())
)

func localCalendar() *datemath.Calendar {
	cal, _ := datemath.NewCalendar("")
	return cal
}

// CalculateDate resolves phrase to a calendar date.
// Errors are *AdapterError, *DateParseError or *ConfigurationError.
func CalculateDate(ctx context.Context, phrase string, opts ...Option) (datemath.Date, error) {
	o := buildOptions(opts)
	return uc.CalculateDate(ctx, dates.CalculateInput{
		Phrase:        phrase,
		ReferenceDate: o.referenceDate,
		Client:        o.client,
	})
}

// ExtractDate returns taskText without its date references and the date it
// mentions, or a nil date when there is none.
func ExtractDate(ctx context.Context, taskText string, opts ...Option) (string, *datemath.Date, error) {
	o := buildOptions(opts)
	out, err := uc.ExtractDate(ctx, dates.ExtractInput{
		TaskText:      taskText,
		ReferenceDate: o.referenceDate,
		Client:        o.client,
	})
	if err != nil {
		return "", nil, err
	}
	return out.CleanedText, out.Date, nil
}

// SetDefaultClient registers c as the default client. A nil c clears it, so
// the next call builds a fresh one from the environment.
func SetDefaultClient(c Client) {
	defaultClient.Set(c)
}

// DefaultClient returns the default client, building it if none is registered.
func DefaultClient(ctx context.Context) (Client, error) {
	return defaultClient.Get(ctx)
}

// NewClient builds a model-backed client from cfg.
func NewClient(ctx context.Context, l log.Logger, cfg config.LLMConfig) (Client, error) {
	if l == nil {
		l = log.NewNop()
	}
	a, err := adapter.NewFromConfig(ctx, l, cfg)
	if err != nil {
		return nil, err
	}
	return a, nil
}
