package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestSplitKV(t *testing.T) {
	msg, kv, ok := splitKV([]any{"LLM generation successful", "provider", "openai", "model", "gpt-4"})
	assert.True(t, ok)
	assert.Equal(t, "LLM generation successful", msg)
	assert.Len(t, kv, 4)

	_, _, ok = splitKV([]any{"Failed to run server: ", assert.AnError})
	assert.False(t, ok)

	_, _, ok = splitKV([]any{"just a message"})
	assert.False(t, ok)
}

func TestInit_DoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: "development", Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Debug(WithRequestID(context.Background(), "abc"), "ping", "k", 1)
		l.Infof(context.Background(), "ping %d", 2)
	}
	NewNop().Error(context.Background(), "discarded")
}
