package usecase

import (
	"context"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
)

// referenceDate returns ref, or today in the configured calendar when ref is nil.
func (uc *implUseCase) referenceDate(ref *datemath.Date) datemath.Date {
	if ref != nil {
		return *ref
	}
	return uc.calendar.Today(uc.now())
}

func (uc *implUseCase) client(ctx context.Context, explicit dates.Client) (dates.Client, error) {
	c, err := uc.defaults.Resolve(ctx, explicit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.client Resolve: %v", err)
		return nil, err
	}
	return c, nil
}

// parseModelDate strictly parses raw as YYYY-MM-DD.
func parseModelDate(input, raw string) (datemath.Date, error) {
	d, err := datemath.ParseISO(raw)
	if err != nil {
		return datemath.Date{}, &dates.DateParseError{Input: input, Raw: raw, Err: err}
	}
	return d, nil
}
