package usecase

import (
	"context"

	"nl-dates/internal/dates"
)

// ExtractDate splits a task description into its text and optional date.
// Either both parts are returned or the call fails.
func (uc *implUseCase) ExtractDate(ctx context.Context, input dates.ExtractInput) (dates.ExtractOutput, error) {
	ref := uc.referenceDate(input.ReferenceDate)

	c, err := uc.client(ctx, input.Client)
	if err != nil {
		return dates.ExtractOutput{}, err
	}

	ext, err := c.ExtractDateFromTask(ctx, input.TaskText, ref)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExtractDate ExtractDateFromTask: %v", err)
		return dates.ExtractOutput{}, err
	}

	if !ext.HasDate {
		uc.l.Debugf(ctx, "uc.ExtractDate: no date in %q", input.TaskText)
		return dates.ExtractOutput{CleanedText: ext.CleanedText}, nil
	}

	d, err := parseModelDate(input.TaskText, ext.RawDate)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ExtractDate parseModelDate: %v", err)
		return dates.ExtractOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.ExtractDate: %q relative to %s = (%q, %s)", input.TaskText, ref, ext.CleanedText, d)
	return dates.ExtractOutput{CleanedText: ext.CleanedText, Date: &d}, nil
}
