package adapter

import (
	"fmt"
	"time"

	"nl-dates/pkg/datemath"
)

func buildParseDatePrompt(phrase string, ref datemath.Date) string {
	return fmt.Sprintf(
		ParseDatePromptTemplate,
		ref.String(),
		ref.Weekday().String(),
		ref.String(),
		ref.AddDays(1).String(),
		ref.AddDays(3).String(),
		ref.AddDays(7).String(),
		phrase,
	)
}

func buildExtractDatePrompt(taskText string, ref datemath.Date) string {
	return fmt.Sprintf(
		ExtractDatePromptTemplate,
		taskText,
		ref.String(),
		ref.AddDays(1).String(),
		nextWeekday(ref, time.Tuesday).String(),
		ref.AddDays(3).String(),
	)
}

// nextWeekday returns the first day strictly after ref that falls on wd.
func nextWeekday(ref datemath.Date, wd time.Weekday) datemath.Date {
	n := (int(wd) - int(ref.Weekday()) + 7) % 7
	if n == 0 {
		n = 7
	}
	return ref.AddDays(n)
}
