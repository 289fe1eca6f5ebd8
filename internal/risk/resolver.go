package risk

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"certrisk-backend/internal/dataset"
)

const scoreColumn = "score_final"

// Resolver resolves a case identifier to a classification result by looking
// it up in the scored dataset, checking the ranking index on a miss, and
// running the classifier when every model feature is present.
type Resolver struct {
	Dataset dataset.Repository
	Ranking dataset.RankingIndex
	Model   *Model
}

// Assess evaluates the case identifier end to end. Every expected outcome
// resolves to a Result with a status and message; only dataset read failures
// surface as errors.
func (r *Resolver) Assess(ctx context.Context, caseID string) (Result, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(caseID), 10, 64)
	if caseID == "" || err != nil {
		return Result{Status: StatusNoIdentifier, Message: msgNoIdentifier}, nil
	}

	rec, found, err := r.Dataset.LookupByCaseID(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("lookup case %d: %w", id, err)
	}
	if !found {
		ranked, err := r.Ranking.Contains(ctx, id)
		if err != nil {
			return Result{}, fmt.Errorf("ranking check for case %d: %w", id, err)
		}
		if ranked {
			return Result{Status: StatusNotEligible, Message: msgNotEligible}, nil
		}
		return Result{Status: StatusUnknownCase, Message: msgUnknownCase}, nil
	}

	return r.evaluate(rec), nil
}

// evaluate classifies a resolved dataset row. The feature vector follows the
// model manifest order, never the row's map order.
func (r *Resolver) evaluate(rec dataset.Record) Result {
	var missing []string
	vector := make([]float64, 0, len(r.Model.FeatureColumns))
	snapshot := make(map[string]float64, len(r.Model.FeatureColumns))
	for _, col := range r.Model.FeatureColumns {
		v, ok := rec.Value(col)
		if !ok {
			missing = append(missing, col)
			continue
		}
		vector = append(vector, v)
		snapshot[col] = v
	}

	var totalScore *float64
	if v, ok := rec.Value(scoreColumn); ok {
		totalScore = &v
	}

	if len(missing) > 0 {
		if len(missing) > 10 {
			missing = missing[:10]
		}
		return Result{
			Status:     StatusMissingFeatures,
			Features:   map[string]float64{},
			TotalScore: totalScore,
			Message:    fmt.Sprintf("Faltan columnas en el dataset: %v", missing),
		}
	}

	pred := r.Model.Predict(vector)
	return Result{
		Status:     StatusOK,
		PredNum:    &pred,
		PredText:   TierName(pred),
		Features:   snapshot,
		TotalScore: totalScore,
	}
}
