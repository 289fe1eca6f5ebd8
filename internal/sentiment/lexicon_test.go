package sentiment

import (
	"context"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLexiconScoreEmptyBatch(t *testing.T) {
	got, err := LexiconScorer{}.Score(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Fatalf("Score(nil) = %v; want 0.5", got)
	}
}

func TestLexiconScoreNoTokens(t *testing.T) {
	got, err := LexiconScorer{}.Score(context.Background(), []string{"!!! ???"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Fatalf("Score = %v; want 0.5 for text without tokens", got)
	}
}

func TestLexiconScorePerReview(t *testing.T) {
	tests := []struct {
		name   string
		review string
		want   float64
	}{
		{"two positives", "Excelente servicio, muy bueno", 0.7},
		{"one negative", "llegó tarde", 0.4},
		{"mixed cancels out", "bueno pero tarde", 0.5},
		{"accent variants count", "Súper rápida atención", 0.7},
		{"clamped high", "excelente bueno amable eficiente profesional calidad puntuales", 1.0},
		{"clamped low", "malo tarde retraso deficiente pésimo lento caro", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LexiconScorer{}.Score(context.Background(), []string{tt.review})
			if err != nil {
				t.Fatal(err)
			}
			if !almostEqual(got, tt.want) {
				t.Fatalf("Score(%q) = %v; want %v", tt.review, got, tt.want)
			}
		})
	}
}

func TestLexiconScoreAverages(t *testing.T) {
	got, err := LexiconScorer{}.Score(context.Background(), []string{
		"excelente bueno", // 0.7
		"malo",            // 0.4
	})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 0.55) {
		t.Fatalf("Score = %v; want 0.55", got)
	}
}
