package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiStream_CollectsChunks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":streamGenerateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("alt") != "sse" {
			t.Fatalf("expected alt=sse")
		}
		var payload geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.SystemInstruction == nil {
			t.Fatalf("expected system instruction")
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintln(w, `data: {"candidates":[{"content":{"parts":[{"text":"Hello"}]}}]}`)
		fmt.Fprintln(w)
		fmt.Fprintln(w, `data: {"candidates":[{"content":{"parts":[{"text":" there"}]}}]}`)
	}))
	defer ts.Close()

	client := NewGeminiClient("test-key", ts.URL, "gemini-2.0-flash")
	ch, err := client.Stream(context.Background(), GenerateRequest{
		Prompt:       "hi",
		SystemPrompt: "You are a helpful assistant.",
	})
	if err != nil {
		t.Fatalf("stream failed: %v", err)
	}

	var got string
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("unexpected chunk error: %v", chunk.Err)
		}
		got += chunk.Text
	}
	if got != "Hello there" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGeminiStream_NoAPIKey(t *testing.T) {
	client := NewGeminiClient("", "http://example.com", "gemini-2.0-flash")
	if _, err := client.Stream(context.Background(), GenerateRequest{Prompt: "hi"}); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestGeminiStream_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGeminiClient("test-key", ts.URL, "gemini-2.0-flash")
	_, err := client.Stream(context.Background(), GenerateRequest{Prompt: "hi"})
	if err == nil {
		t.Fatalf("expected error for 429")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestGeminiComplete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Summary: "}, {"text": "all good"}},
				}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient("test-key", ts.URL, "gemini-2.0-flash")
	text, err := client.Complete(context.Background(), GenerateRequest{Prompt: "summarize"})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if text != "Summary: all good" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGeminiComplete_ModelOverride(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/gemini-pro:") {
			t.Fatalf("model override not applied: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "ok"}}}},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient("test-key", ts.URL, "gemini-2.0-flash")
	if _, err := client.Complete(context.Background(), GenerateRequest{Prompt: "x", Model: "gemini-pro"}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
}

func TestGeminiListModels(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"models": []map[string]string{
				{"name": "models/gemini-2.0-flash"},
				{"name": "models/gemini-pro"},
			},
		})
	}))
	defer ts.Close()

	client := NewGeminiClient("test-key", ts.URL, "gemini-2.0-flash")
	models := client.ListModels(context.Background())
	if len(models) != 2 || models[0] != "gemini-2.0-flash" {
		t.Fatalf("unexpected models %v", models)
	}
}

func TestParseProvider(t *testing.T) {
	if p, err := ParseProvider(" Gemini "); err != nil || p != ProviderGemini {
		t.Fatalf("expected gemini, got %v %v", p, err)
	}
	if p, err := ParseProvider("ollama"); err != nil || p != ProviderOllama {
		t.Fatalf("expected ollama, got %v %v", p, err)
	}
	if _, err := ParseProvider("openai"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestRegistry(t *testing.T) {
	gemini := NewGeminiClient("k", "http://example.com", "m")
	reg := NewRegistry(map[Provider]Client{ProviderGemini: gemini})

	if c, err := reg.Client(ProviderGemini); err != nil || c != Client(gemini) {
		t.Fatalf("expected gemini client, got %v %v", c, err)
	}
	if _, err := reg.Client(ProviderOllama); err == nil {
		t.Fatalf("expected error for unconfigured provider")
	}
	if len(reg.Providers()) != 1 {
		t.Fatalf("unexpected provider count")
	}
}
