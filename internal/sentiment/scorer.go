package sentiment

import "context"

// Scorer produces an aggregate sentiment score in [0,1] for a batch of
// review texts. 0 is very negative, 1 very positive, 0.5 neutral.
type Scorer interface {
	Score(ctx context.Context, reviews []string) (float64, error)
	Name() string
}
