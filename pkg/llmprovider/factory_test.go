package llmprovider_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl-dates/config"
	"nl-dates/pkg/llmprovider"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LLMConfig
		wantName  string
		wantModel string
		wantErr   error
	}{
		{
			name:      "OpenAI default",
			cfg:       config.LLMConfig{Provider: "openai", APIKey: "sk", Timeout: time.Second},
			wantName:  "openai",
			wantModel: "gpt-4",
		},
		{
			name:      "Empty name means openai",
			cfg:       config.LLMConfig{APIKey: "sk"},
			wantName:  "openai",
			wantModel: "gpt-4",
		},
		{
			name:      "OpenAI custom model",
			cfg:       config.LLMConfig{Provider: "openai", APIKey: "sk", Model: "gpt-4o-mini"},
			wantName:  "openai",
			wantModel: "gpt-4o-mini",
		},
		{
			name:      "DeepSeek",
			cfg:       config.LLMConfig{Provider: "deepseek", APIKey: "ds"},
			wantName:  "deepseek",
			wantModel: llmprovider.DeepSeekModel,
		},
		{
			name:      "Alibaba alias",
			cfg:       config.LLMConfig{Provider: "alibaba", APIKey: "qw"},
			wantName:  "qwen",
			wantModel: llmprovider.QwenModel,
		},
		{
			name:      "Gemini with API key",
			cfg:       config.LLMConfig{Provider: "gemini", APIKey: "g", Model: "gemini-test"},
			wantName:  "gemini",
			wantModel: "gemini-test",
		},
		{
			name:    "OpenAI missing key",
			cfg:     config.LLMConfig{Provider: "openai"},
			wantErr: llmprovider.ErrMissingAPIKey,
		},
		{
			name:    "Gemini missing credentials",
			cfg:     config.LLMConfig{Provider: "gemini"},
			wantErr: llmprovider.ErrMissingAPIKey,
		},
		{
			name:    "Unknown provider",
			cfg:     config.LLMConfig{Provider: "skynet", APIKey: "x"},
			wantErr: llmprovider.ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := llmprovider.NewProvider(context.Background(), tt.cfg)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantModel, p.Model())
		})
	}
}

func TestNewProvider_GeminiOverREST(t *testing.T) {
	var capturedPath, capturedKey, capturedBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.URL.Query().Get("key")
		raw, _ := io.ReadAll(r.Body)
		capturedBody = string(raw)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"2025-11-19"}]}}]}`))
	}))
	defer ts.Close()

	p, err := llmprovider.NewProvider(context.Background(), config.LLMConfig{
		Provider: "gemini",
		APIKey:   "g-key",
		Model:    "gemini-test",
		BaseURL:  ts.URL + "/v1beta",
		Timeout:  time.Second,
	})
	require.NoError(t, err)

	resp, err := p.GenerateContent(context.Background(), llmprovider.NewUserRequest("tomorrow", 100))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-19", resp.Text())

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", capturedPath)
	assert.Equal(t, "g-key", capturedKey)
	assert.Contains(t, capturedBody, `"maxOutputTokens":100`)
	assert.Contains(t, capturedBody, `"temperature":0`)
}
