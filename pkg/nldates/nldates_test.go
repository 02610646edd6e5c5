package nldates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-dates/config"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/nldates"
)

type call struct {
	text string
	ref  datemath.Date
}

// fakeClient answers like a well-behaved model for a handful of phrases.
type fakeClient struct {
	calls []call
}

func (f *fakeClient) ParseDate(ctx context.Context, phrase string, ref datemath.Date) (string, error) {
	f.calls = append(f.calls, call{phrase, ref})
	switch phrase {
	case "today":
		return ref.String(), nil
	case "tomorrow":
		return ref.AddDays(1).String(), nil
	case "a week from today":
		return ref.AddDays(7).String(), nil
	}
	return "no idea", nil
}

func (f *fakeClient) ExtractDateFromTask(ctx context.Context, task string, ref datemath.Date) (nldates.Extraction, error) {
	f.calls = append(f.calls, call{task, ref})
	if task == "Submit report tomorrow" {
		return nldates.Extraction{CleanedText: "Submit report", RawDate: ref.AddDays(1).String(), HasDate: true}, nil
	}
	return nldates.Extraction{CleanedText: task}, nil
}

var ref = datemath.MustParseISO("2025-11-18")

func TestCalculateDate_WithClient(t *testing.T) {
	fc := &fakeClient{}

	got, err := nldates.CalculateDate(context.Background(), "tomorrow",
		nldates.WithClient(fc), nldates.WithReferenceDate(ref))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-19", got.String())

	got, err = nldates.CalculateDate(context.Background(), "a week from today",
		nldates.WithClient(fc), nldates.WithReferenceDate(ref))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-25", got.String())
}

func TestCalculateDate_DefaultsToToday(t *testing.T) {
	fc := &fakeClient{}

	before := datemath.FromTime(time.Now())
	got, err := nldates.CalculateDate(context.Background(), "today", nldates.WithClient(fc))
	after := datemath.FromTime(time.Now())
	require.NoError(t, err)

	assert.True(t, got == before || got == after, "got %s", got)
}

func TestCalculateDate_InvalidReply(t *testing.T) {
	_, err := nldates.CalculateDate(context.Background(), "someday", nldates.WithClient(&fakeClient{}))

	var perr *nldates.DateParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "no idea", perr.Raw)
}

func TestExtractDate(t *testing.T) {
	fc := &fakeClient{}

	text, d, err := nldates.ExtractDate(context.Background(), "Submit report tomorrow",
		nldates.WithClient(fc), nldates.WithReferenceDate(ref))
	require.NoError(t, err)
	assert.Equal(t, "Submit report", text)
	require.NotNil(t, d)
	assert.Equal(t, "2025-11-19", d.String())

	text, d, err = nldates.ExtractDate(context.Background(), "Fix the authentication bug",
		nldates.WithClient(fc), nldates.WithReferenceDate(ref))
	require.NoError(t, err)
	assert.Equal(t, "Fix the authentication bug", text)
	assert.Nil(t, d)
}

func TestDefaultClient_Registered(t *testing.T) {
	fc := &fakeClient{}
	nldates.SetDefaultClient(fc)
	t.Cleanup(func() { nldates.SetDefaultClient(nil) })

	got, err := nldates.CalculateDate(context.Background(), "tomorrow", nldates.WithReferenceDate(ref))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-19", got.String())
	require.Len(t, fc.calls, 1)
	assert.Equal(t, call{"tomorrow", ref}, fc.calls[0])

	c, err := nldates.DefaultClient(context.Background())
	require.NoError(t, err)
	assert.Same(t, fc, c)
}

func TestDefaultClient_MissingCredentials(t *testing.T) {
	nldates.SetDefaultClient(nil)
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := nldates.CalculateDate(context.Background(), "tomorrow", nldates.WithReferenceDate(ref))

	var cerr *nldates.ConfigurationError
	assert.True(t, errors.As(err, &cerr), "got %T: %v", err, err)
}

func TestNewClient(t *testing.T) {
	_, err := nldates.NewClient(context.Background(), nil, config.LLMConfig{Provider: config.ProviderOpenAI})
	var cerr *nldates.ConfigurationError
	require.True(t, errors.As(err, &cerr))

	c, err := nldates.NewClient(context.Background(), nil, config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "sk"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}
