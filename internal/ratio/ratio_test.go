package ratio

import (
	"math"
	"testing"

	"github.com/cagridemirci1MIS/codemix/internal/classify"
	"github.com/cagridemirci1MIS/codemix/internal/lexicon"
	"github.com/cagridemirci1MIS/codemix/internal/model"
)

func newTestAggregator(t *testing.T, words []string) *Aggregator {
	t.Helper()
	lex, err := lexicon.New(words)
	if err != nil {
		t.Fatalf("lexicon.New: %v", err)
	}
	c, err := classify.New(lex, model.ClassifierConfig{
		Stemming:       true,
		MinTokenLength: 2,
	})
	if err != nil {
		t.Fatalf("classify.New: %v", err)
	}
	return New(c)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatio(t *testing.T) {
	agg := newTestAggregator(t, []string{"like", "save"})

	tests := []struct {
		name      string
		text      string
		wantRatio float64
		wantTok   int
		wantEng   int
	}{
		{
			name:      "hybrid counts as english",
			text:      "like'lamak",
			wantRatio: 1.0,
			wantTok:   1,
			wantEng:   1,
		},
		{
			name:      "one english in five words",
			text:      "bugün like attım yorum yaptım",
			wantRatio: 0.2,
			wantTok:   5,
			wantEng:   1,
		},
		{
			name:      "empty text",
			text:      "",
			wantRatio: 0.0,
			wantTok:   0,
			wantEng:   0,
		},
		{
			name:      "no word tokens",
			text:      "123 !!! 456",
			wantRatio: 0.0,
			wantTok:   0,
			wantEng:   0,
		},
		{
			name:      "all turkish",
			text:      "çok güzel bir video",
			wantRatio: 0.0,
			wantTok:   4,
			wantEng:   0,
		},
		{
			name:      "save in mixed sentence",
			text:      "bu postu save ettim",
			wantRatio: 0.25,
			wantTok:   4,
			wantEng:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := agg.Ratio(tt.text)
			if !almostEqual(res.Ratio, tt.wantRatio) {
				t.Errorf("Ratio = %v, want %v", res.Ratio, tt.wantRatio)
			}
			if res.Tokens != tt.wantTok {
				t.Errorf("Tokens = %d, want %d", res.Tokens, tt.wantTok)
			}
			if res.English != tt.wantEng {
				t.Errorf("English = %d, want %d", res.English, tt.wantEng)
			}
			if res.Status != model.StatusOK {
				t.Errorf("Status = %q, want %q", res.Status, model.StatusOK)
			}
		})
	}
}

func TestRatio_ExcludedStaysInDenominator(t *testing.T) {
	agg := newTestAggregator(t, []string{"like"})

	// "o" is below the minimum token length: excluded from English
	// counting but still a word token in the denominator.
	res := agg.Ratio("o like attı")

	if res.Tokens != 3 {
		t.Errorf("Tokens = %d, want 3", res.Tokens)
	}
	if res.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", res.Excluded)
	}
	if res.English != 1 {
		t.Errorf("English = %d, want 1", res.English)
	}
	if !almostEqual(res.Ratio, 1.0/3.0) {
		t.Errorf("Ratio = %v, want 1/3", res.Ratio)
	}
}

func TestBatch(t *testing.T) {
	agg := newTestAggregator(t, []string{"like", "save"})

	texts := []string{
		"like bu video",
		"çok güzel bir video",
	}

	results := agg.Batch(texts)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	wantRatios := []float64{1.0 / 3.0, 0.0}
	for i, want := range wantRatios {
		if results[i].Index != i {
			t.Errorf("result %d Index = %d, want %d", i, results[i].Index, i)
		}
		if !almostEqual(results[i].Ratio, want) {
			t.Errorf("result %d Ratio = %v, want %v", i, results[i].Ratio, want)
		}
	}
}

func TestBatch_Empty(t *testing.T) {
	agg := newTestAggregator(t, []string{"like"})

	results := agg.Batch(nil)
	if len(results) != 0 {
		t.Errorf("Batch(nil) returned %d results", len(results))
	}
}

func TestStats(t *testing.T) {
	results := []model.RatioResult{
		{Ratio: 0.5, Tokens: 2, English: 1, Status: model.StatusOK},
		{Ratio: 0.0, Tokens: 4, English: 0, Status: model.StatusOK},
		{Ratio: 0.0, Tokens: 0, English: 0, Status: model.StatusSkipped},
	}

	s := Stats(results)

	if s.Texts != 3 {
		t.Errorf("Texts = %d, want 3", s.Texts)
	}
	if s.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", s.Skipped)
	}
	if s.Tokens != 6 {
		t.Errorf("Tokens = %d, want 6", s.Tokens)
	}
	if s.English != 1 {
		t.Errorf("English = %d, want 1", s.English)
	}
	// Mean of per-text ratios vs pooled ratio: they differ here.
	if !almostEqual(s.MeanRatio, 0.5/3.0) {
		t.Errorf("MeanRatio = %v, want %v", s.MeanRatio, 0.5/3.0)
	}
	if !almostEqual(s.OverallRatio, 1.0/6.0) {
		t.Errorf("OverallRatio = %v, want %v", s.OverallRatio, 1.0/6.0)
	}
}

func TestStats_Empty(t *testing.T) {
	s := Stats(nil)
	if s.Texts != 0 || s.MeanRatio != 0 || s.OverallRatio != 0 {
		t.Errorf("Stats(nil) = %+v, want zero value", s)
	}
}
