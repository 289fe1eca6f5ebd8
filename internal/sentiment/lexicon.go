package sentiment

import (
	"context"
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9áéíóúüñ]+`)

var positiveWords = wordSet(`excelente bueno buena recomendada recomiendo maravilloso rapido rápida
cumplen cumplido eficiente amable profesional calidad fresco frescos super súper puntuales
responsable satisfecho`)

var negativeWords = wordSet(`malo mala tarde retraso retrasados deficiente pésimo queja quejas
lento lenta caro caros fallas problemas nunca jamas jamás`)

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// LexiconScorer scores reviews against a small Spanish word lexicon. It is
// the permanent fallback when no remote sentiment service is available.
type LexiconScorer struct{}

func (LexiconScorer) Name() string { return "lexicon" }

// Score averages per-review scores. A review with no recognizable tokens,
// and an empty batch, both score neutral.
func (LexiconScorer) Score(ctx context.Context, reviews []string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0.5, nil
	}
	total := 0.0
	for _, review := range reviews {
		total += scoreText(review)
	}
	return total / float64(len(reviews)), nil
}

func scoreText(text string) float64 {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return 0.5
	}
	pos, neg := 0, 0
	for _, t := range tokens {
		if _, ok := positiveWords[t]; ok {
			pos++
		}
		if _, ok := negativeWords[t]; ok {
			neg++
		}
	}
	raw := 0.5 + 0.1*float64(pos-neg)
	if raw < 0 {
		return 0
	}
	if raw > 1 {
		return 1
	}
	return raw
}
