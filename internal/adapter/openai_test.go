package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

func openAICompletion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func TestOpenAIAdapterGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization: got %q, want %q", got, "Bearer sk-test")
		}

		var req struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"max_tokens"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if req.Model != "gpt-4o-mini" {
			t.Errorf("model: got %q, want %q", req.Model, "gpt-4o-mini")
		}
		if req.Temperature != 0.7 {
			t.Errorf("temperature: got %v, want 0.7", req.Temperature)
		}
		if req.MaxTokens != 1500 {
			t.Errorf("max_tokens: got %d, want 1500", req.MaxTokens)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "system" || !strings.Contains(req.Messages[0].Content, "INTJ") {
			t.Errorf("system message: got role %q content %q", req.Messages[0].Role, req.Messages[0].Content)
		}
		if req.Messages[1].Role != "user" || !strings.HasSuffix(req.Messages[1].Content, "meet at 3pm") {
			t.Errorf("user message: got role %q content %q", req.Messages[1].Role, req.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAICompletion(`  {"summary": "ok"}  `))
	}))
	defer srv.Close()

	a := NewOpenAIAdapter(srv.URL+"/v1", "sk-test", "gpt-4o-mini", srv.Client())

	got, err := a.Generate(context.Background(), "meet at 3pm", "INTJ", "en")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != `{"summary": "ok"}` {
		t.Errorf("got %q, want %q", got, `{"summary": "ok"}`)
	}
}

func TestOpenAIAdapterServerErrorNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	a := NewOpenAIAdapter(srv.URL+"/v1", "sk-test", "gpt-4o-mini", srv.Client())

	_, err := a.Generate(context.Background(), "hello", "INTJ", "en")
	if err == nil {
		t.Fatal("expected error on 500 response, got nil")
	}
	if !errors.Is(err, analysis.ErrUpstream) {
		t.Errorf("error %v should wrap ErrUpstream", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q should carry the status code", err)
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Errorf("error %q should carry the response body", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls: got %d, want 1", n)
	}
}

func TestOpenAIAdapterEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openAICompletion("")
		resp["choices"] = []map[string]any{}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := NewOpenAIAdapter(srv.URL+"/v1", "sk-test", "gpt-4o-mini", srv.Client())

	_, err := a.Generate(context.Background(), "hello", "INTJ", "en")
	if !errors.Is(err, analysis.ErrUpstream) {
		t.Errorf("got %v, want ErrUpstream", err)
	}
}

func TestOpenAIAdapterEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAICompletion("  \n"))
	}))
	defer srv.Close()

	a := NewOpenAIAdapter(srv.URL+"/v1", "sk-test", "gpt-4o-mini", srv.Client())

	_, err := a.Generate(context.Background(), "hello", "INTJ", "en")
	if !errors.Is(err, analysis.ErrUpstream) {
		t.Errorf("got %v, want ErrUpstream", err)
	}
}

func TestOpenAIAdapterContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openAICompletion("{}"))
	}))
	defer srv.Close()

	a := NewOpenAIAdapter(srv.URL+"/v1", "sk-test", "gpt-4o-mini", srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Generate(ctx, "hello", "INTJ", "en")
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestOpenAIAdapterAvailable(t *testing.T) {
	if !NewOpenAIAdapter("", "sk-test", "gpt-4o", nil).Available() {
		t.Error("expected available when API key is set")
	}
	if NewOpenAIAdapter("", "", "gpt-4o", nil).Available() {
		t.Error("expected not available when API key is empty")
	}
}

func TestOpenAIAdapterName(t *testing.T) {
	a := NewOpenAIAdapter("", "sk-test", "gpt-4o-mini", nil)
	if a.Name() != "OpenAI (gpt-4o-mini)" {
		t.Errorf("got %q, want %q", a.Name(), "OpenAI (gpt-4o-mini)")
	}
}
