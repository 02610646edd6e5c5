package usecase

import (
	"context"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
)

// CalculateDate resolves a standalone date phrase to a calendar date.
func (uc *implUseCase) CalculateDate(ctx context.Context, input dates.CalculateInput) (datemath.Date, error) {
	ref := uc.referenceDate(input.ReferenceDate)

	c, err := uc.client(ctx, input.Client)
	if err != nil {
		return datemath.Date{}, err
	}

	raw, err := c.ParseDate(ctx, input.Phrase, ref)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalculateDate ParseDate: %v", err)
		return datemath.Date{}, err
	}

	d, err := parseModelDate(input.Phrase, raw)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CalculateDate parseModelDate: %v", err)
		return datemath.Date{}, err
	}

	uc.l.Debugf(ctx, "uc.CalculateDate: %q relative to %s = %s", input.Phrase, ref, d)
	return d, nil
}
