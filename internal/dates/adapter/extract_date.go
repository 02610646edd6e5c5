package adapter

import (
	"context"
	"fmt"
	"strings"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/llmprovider"
)

// ExtractDateFromTask asks the model to split taskText into the text without
// its date and a date line. A date line of "None" (any case) means no date.
func (a *Adapter) ExtractDateFromTask(ctx context.Context, taskText string, ref datemath.Date) (dates.Extraction, error) {
	req := llmprovider.NewUserRequest(buildExtractDatePrompt(taskText, ref), ExtractDateMaxTokens)
	req.Temperature = a.temperature

	resp, err := a.provider.GenerateContent(ctx, req)
	if err != nil {
		return dates.Extraction{}, &dates.AdapterError{Op: dates.OpExtractDateFromTask, Input: taskText, Err: err}
	}

	text := resp.Text()
	if text == "" {
		return dates.Extraction{}, &dates.AdapterError{Op: dates.OpExtractDateFromTask, Input: taskText, Err: dates.ErrEmptyResponse}
	}
	a.l.Debugf(ctx, "adapter.ExtractDateFromTask: task=%q ref=%s reply=%q", taskText, ref, text)

	return parseExtraction(taskText, text)
}

// parseExtraction reads the first two lines of a trimmed reply.
// Lines past the second are ignored.
func parseExtraction(taskText, reply string) (dates.Extraction, error) {
	lines := splitLines(reply)
	if len(lines) < 2 {
		return dates.Extraction{}, &dates.AdapterError{
			Op:    dates.OpExtractDateFromTask,
			Input: taskText,
			Err:   fmt.Errorf("%w: expected 2 lines, got %d: %q", dates.ErrMalformedReply, len(lines), reply),
		}
	}

	out := dates.Extraction{CleanedText: strings.TrimSpace(lines[0])}
	dateLine := strings.TrimSpace(lines[1])
	if strings.EqualFold(dateLine, noDateToken) {
		return out, nil
	}

	out.RawDate = dateLine
	out.HasDate = true
	return out, nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
