package adapter

import (
	"context"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/llmprovider"
)

// ParseDate asks the model for the ISO date phrase denotes relative to ref.
// The reply is returned trimmed and unvalidated.
func (a *Adapter) ParseDate(ctx context.Context, phrase string, ref datemath.Date) (string, error) {
	req := llmprovider.NewUserRequest(buildParseDatePrompt(phrase, ref), ParseDateMaxTokens)
	req.Temperature = a.temperature

	resp, err := a.provider.GenerateContent(ctx, req)
	if err != nil {
		return "", &dates.AdapterError{Op: dates.OpParseDate, Input: phrase, Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &dates.AdapterError{Op: dates.OpParseDate, Input: phrase, Err: dates.ErrEmptyResponse}
	}

	a.l.Debugf(ctx, "adapter.ParseDate: phrase=%q ref=%s reply=%q", phrase, ref, text)
	return text, nil
}
