package dates

import (
	"context"

	"nl-dates/pkg/datemath"
)

// Client performs the exchange with the language model.
// It returns raw model text; validation of that text belongs to UseCase.
type Client interface {
	// ParseDate resolves a standalone phrase and returns the trimmed reply.
	ParseDate(ctx context.Context, phrase string, ref datemath.Date) (string, error)

	// ExtractDateFromTask splits taskText into cleaned text and an unparsed date line.
	ExtractDateFromTask(ctx context.Context, taskText string, ref datemath.Date) (Extraction, error)
}

// ClientFactory builds a fresh Client, typically from ambient credentials.
type ClientFactory func(ctx context.Context) (Client, error)

type UseCase interface {
	CalculateDate(ctx context.Context, input CalculateInput) (datemath.Date, error)
	ExtractDate(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
