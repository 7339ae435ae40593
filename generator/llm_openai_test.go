package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewOpenAILLMValidation(t *testing.T) {
	if _, err := NewOpenAILLM(LLMSettings{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := NewOpenAILLM(LLMSettings{BaseURL: "http://localhost:11434/v1"}); err != nil {
		t.Fatalf("bare endpoint without key should be accepted: %v", err)
	}
}

func TestOpenAILLMComplete(t *testing.T) {
	var captured struct {
		Model       string           `json:"model"`
		Temperature float64          `json:"temperature"`
		Messages    []map[string]any `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": "<div>generated</div>",
					},
				},
			},
		})
	}))
	defer srv.Close()

	client, err := NewOpenAILLM(LLMSettings{APIKey: "test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := client.Complete(context.Background(), "gpt-4o", Prompt{System: "persona", User: "action"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<div>generated</div>" {
		t.Fatalf("unexpected content: %q", got)
	}
	if captured.Model != "gpt-4o" {
		t.Fatalf("model = %q", captured.Model)
	}
	if captured.Temperature != genTemperature {
		t.Fatalf("temperature = %v, want %v", captured.Temperature, genTemperature)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(captured.Messages))
	}
}

func TestOpenAILLMCompleteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such route", http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewOpenAILLM(LLMSettings{APIKey: "test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Complete(context.Background(), "gpt-4o", Prompt{User: "a"}); err == nil {
		t.Fatalf("expected error on 404")
	}
}

func TestOpenAILLMListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			t.Fatalf("authorization header missing")
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"id": "gpt-4o", "object": "model"},
				{"id": "gpt-4o-mini", "object": "model"},
			},
		})
	}))
	defer srv.Close()

	client, err := NewOpenAILLM(LLMSettings{APIKey: "test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 2 || models[0] != "gpt-4o" || models[1] != "gpt-4o-mini" {
		t.Fatalf("unexpected models: %v", models)
	}
}
