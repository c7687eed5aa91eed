package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cagridemirci1MIS/codemix/internal/model"
)

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{})
	if err == nil {
		t.Error("expected error when API key is missing")
	}

	p, err := NewOpenAIProvider(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Name() = %q, want openai", p.Name())
	}
}

func TestOpenAIProvider_Summarize(t *testing.T) {
	var capturedBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&capturedBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  About a fifth of the tokens are English-origin.  "}},
			},
			"usage": map[string]any{"total_tokens": 180},
		})
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL + "/v1",
		Model:   "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	report := model.Report{
		Subject: "comments.csv",
		Corpus: model.CorpusStats{
			Texts:        50,
			Tokens:       800,
			English:      160,
			MeanRatio:    0.2,
			OverallRatio: 0.2,
		},
	}

	resp, err := p.Summarize(context.Background(), SummarizeRequest{Report: report})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if resp.Summary != "About a fifth of the tokens are English-origin." {
		t.Errorf("summary not trimmed: %q", resp.Summary)
	}
	if resp.TokensUsed != 180 {
		t.Errorf("TokensUsed = %d, want 180", resp.TokensUsed)
	}
	if capturedBody["model"] != "gpt-4o-mini" {
		t.Errorf("request model = %v", capturedBody["model"])
	}
}

func TestOpenAIProvider_Summarize_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	p, _ := NewOpenAIProvider(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})

	_, err := p.Summarize(context.Background(), SummarizeRequest{})
	if err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestBuildPrompt_InjectsFigures(t *testing.T) {
	report := model.Report{
		Subject: "thesis-corpus",
		Corpus: model.CorpusStats{
			Texts:        250,
			Skipped:      3,
			Tokens:       4200,
			English:      630,
			MeanRatio:    0.1532,
			OverallRatio: 0.15,
		},
		Roots: []model.RootCount{
			{Root: "like", Count: 42},
			{Root: "follow", Count: 17},
		},
	}

	prompt := BuildPrompt(report)

	for _, want := range []string{
		"thesis-corpus",
		"250",
		"4200",
		"630",
		"0.1532",
		"like (42)",
		"follow (17)",
		"Do not recompute",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_RootListCapped(t *testing.T) {
	report := model.Report{Subject: "x"}
	for i := 0; i < 15; i++ {
		report.Roots = append(report.Roots, model.RootCount{Root: string(rune('a' + i)), Count: 15 - i})
	}

	prompt := BuildPrompt(report)

	if strings.Contains(prompt, "- k (") {
		t.Error("prompt should list at most 10 roots")
	}
	if !strings.Contains(prompt, "- j (") {
		t.Error("prompt should include the tenth root")
	}
}
