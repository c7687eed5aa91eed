package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cagridemirci1MIS/codemix/internal/model"
)

func TestNewOllamaProvider_Defaults(t *testing.T) {
	p, err := NewOllamaProvider(Config{})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}
	if p.baseURL != "http://localhost:11434" {
		t.Errorf("default baseURL = %q", p.baseURL)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q, want ollama", p.Name())
	}
}

func TestNewOllamaProvider_TrimsTrailingSlash(t *testing.T) {
	p, err := NewOllamaProvider(Config{BaseURL: "http://ollama.local:11434/"})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}
	if p.baseURL != "http://ollama.local:11434" {
		t.Errorf("baseURL = %q, want trailing slash removed", p.baseURL)
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: srv.URL})
	if !p.IsAvailable(context.Background()) {
		t.Error("expected provider to be available")
	}
}

func TestOllamaProvider_IsAvailable_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: srv.URL})
	if p.IsAvailable(context.Background()) {
		t.Error("expected provider to be unavailable on HTTP 500")
	}
}

func TestOllamaProvider_Summarize(t *testing.T) {
	var captured ollamaRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		resp := ollamaResponse{
			Model:           captured.Model,
			Response:        "The corpus shows moderate English mixing.",
			Done:            true,
			PromptEvalCount: 120,
			EvalCount:       30,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: srv.URL, Model: "llama3.1:8b"})

	report := model.Report{
		Subject: "comments.csv",
		Corpus: model.CorpusStats{
			Texts:        100,
			Tokens:       1500,
			English:      300,
			MeanRatio:    0.21,
			OverallRatio: 0.2,
		},
	}

	resp, err := p.Summarize(context.Background(), SummarizeRequest{Report: report})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if resp.Summary != "The corpus shows moderate English mixing." {
		t.Errorf("unexpected summary: %q", resp.Summary)
	}
	if resp.TokensUsed != 150 {
		t.Errorf("TokensUsed = %d, want 150", resp.TokensUsed)
	}
	if captured.Model != "llama3.1:8b" {
		t.Errorf("request model = %q", captured.Model)
	}
	if captured.Stream {
		t.Error("request should not be streaming")
	}
	if captured.System != systemPrompt {
		t.Errorf("system prompt mismatch: %q", captured.System)
	}
}

func TestOllamaProvider_Summarize_MissingModel(t *testing.T) {
	p, _ := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})

	_, err := p.Summarize(context.Background(), SummarizeRequest{})
	if err == nil {
		t.Error("expected error when no model is configured")
	}
}

func TestOllamaProvider_Summarize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer srv.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: srv.URL, Model: "missing"})

	_, err := p.Summarize(context.Background(), SummarizeRequest{})
	if err == nil {
		t.Error("expected error for HTTP 404")
	}
}
