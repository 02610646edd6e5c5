package llmprovider

import (
	"context"
	"errors"
	"testing"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestWithLogging_Success(t *testing.T) {
	expectedResponse := &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: "2025-11-19"}},
		},
		ProviderName: "primary",
		ModelName:    "primary-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 5,
			TotalTokens:  105,
		},
	}

	primary := &mockProvider{name: "primary", model: "primary-model", response: expectedResponse}
	logger := &mockLogger{}

	p := WithLogging(primary, logger)
	req := NewUserRequest("tomorrow", 100)

	resp, err := p.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.Text() != "2025-11-19" {
		t.Errorf("Expected text '2025-11-19', got: %q", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected provider to be called once, got: %d", primary.callCount)
	}
	if primary.lastReq != req {
		t.Errorf("Expected request to be passed through unchanged")
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
	if p.Name() != "primary" || p.Model() != "primary-model" {
		t.Errorf("Expected identity of wrapped provider, got %s/%s", p.Name(), p.Model())
	}
}

func TestWithLogging_FailureIsNotRetried(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	logger := &mockLogger{}

	resp, err := WithLogging(primary, logger).GenerateContent(context.Background(), NewUserRequest("today", 100))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one call, got: %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestWithLogging_NilUsage(t *testing.T) {
	primary := &mockProvider{name: "p", model: "m", response: &Response{}}
	logger := &mockLogger{}

	if _, err := WithLogging(primary, logger).GenerateContent(context.Background(), NewUserRequest("x", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}
}

func TestResponse_Text(t *testing.T) {
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Errorf("nil response should have empty text")
	}

	resp := &Response{Content: Message{Parts: []Part{{Text: "  Submit report\n"}, {Text: "2025-11-19  "}}}}
	if got := resp.Text(); got != "Submit report\n2025-11-19" {
		t.Errorf("unexpected text: %q", got)
	}
}
