package llm

import (
	"context"
	"errors"
	"testing"
)

func TestRegistry_GetUnknownProvider(t *testing.T) {
	r, err := NewRegistry(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = r.Get("perplexity")
	if err == nil {
		t.Fatal("expected error for unregistered provider")
	}
	var unknown *ErrUnknownProvider
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownProvider, got %T", err)
	}
	if unknown.Name != "perplexity" {
		t.Fatalf("expected name 'perplexity', got %q", unknown.Name)
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r, err := NewRegistry(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock := NewMockProvider(MockResponse{Text: `{"ok": true}`})
	r.Register(ProviderOpenAI, mock)

	p, err := r.Get(ProviderOpenAI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"ok": true}` {
		t.Fatalf("unexpected reply: %s", resp.Text)
	}
}

func TestRegistry_OnlyConfiguredBackends(t *testing.T) {
	r, err := NewRegistry(context.Background(), Config{
		OpenAI:   ProviderSettings{APIKey: "sk-test"},
		DeepSeek: ProviderSettings{APIKey: "ds-test"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := r.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 providers, got %v", names)
	}
	if names[0] != ProviderDeepSeek || names[1] != ProviderOpenAI {
		t.Fatalf("unexpected providers: %v", names)
	}

	if _, err := r.Get(ProviderAnthropic); err == nil {
		t.Fatal("anthropic should not be registered without a key")
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: `{}`})

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Complete(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}
