package risk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"certrisk-backend/internal/dataset"
)

// Model holds the pre-fitted classifier artifacts: the ordered feature
// manifest, the standardizer parameters and the linear decision weights.
// It is loaded once at startup and treated as immutable afterwards.
type Model struct {
	FeatureColumns []string
	Mean           []float64
	Scale          []float64
	Classes        []int
	Coef           [][]float64
	Intercept      []float64
}

type scalerManifest struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type classifierManifest struct {
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LoadModel reads feature_columns.json, scaler.json and classifier.json from
// dir. Any missing or inconsistent artifact is an error; callers are expected
// to abort startup on failure.
func LoadModel(dir string) (*Model, error) {
	var cols []string
	if err := readJSON(filepath.Join(dir, "feature_columns.json"), &cols); err != nil {
		return nil, err
	}
	// The identifier column never belongs in the feature vector.
	features := make([]string, 0, len(cols))
	for _, c := range cols {
		c = strings.TrimSpace(c)
		if c == "" || strings.EqualFold(c, dataset.CaseIDColumn) {
			continue
		}
		features = append(features, c)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("feature_columns.json lists no usable columns")
	}

	var scaler scalerManifest
	if err := readJSON(filepath.Join(dir, "scaler.json"), &scaler); err != nil {
		return nil, err
	}
	if len(scaler.Mean) != len(features) || len(scaler.Scale) != len(features) {
		return nil, fmt.Errorf("scaler.json: got %d/%d parameters for %d features",
			len(scaler.Mean), len(scaler.Scale), len(features))
	}
	for i, s := range scaler.Scale {
		if s == 0 {
			scaler.Scale[i] = 1
		}
	}

	var clf classifierManifest
	if err := readJSON(filepath.Join(dir, "classifier.json"), &clf); err != nil {
		return nil, err
	}
	if len(clf.Classes) == 0 || len(clf.Coef) != len(clf.Classes) || len(clf.Intercept) != len(clf.Classes) {
		return nil, fmt.Errorf("classifier.json: classes, coef and intercept disagree")
	}
	for i, row := range clf.Coef {
		if len(row) != len(features) {
			return nil, fmt.Errorf("classifier.json: coef row %d has %d weights, want %d", i, len(row), len(features))
		}
	}

	return &Model{
		FeatureColumns: features,
		Mean:           scaler.Mean,
		Scale:          scaler.Scale,
		Classes:        clf.Classes,
		Coef:           clf.Coef,
		Intercept:      clf.Intercept,
	}, nil
}

// Predict standardizes the feature vector and returns the class label with
// the highest decision score. The vector must follow FeatureColumns order.
func (m *Model) Predict(features []float64) int {
	scaled := make([]float64, len(features))
	for i, v := range features {
		scaled[i] = (v - m.Mean[i]) / m.Scale[i]
	}

	best := 0
	bestScore := decisionScore(m.Coef[0], m.Intercept[0], scaled)
	for c := 1; c < len(m.Classes); c++ {
		if score := decisionScore(m.Coef[c], m.Intercept[c], scaled); score > bestScore {
			best, bestScore = c, score
		}
	}
	return m.Classes[best]
}

func decisionScore(coef []float64, intercept float64, x []float64) float64 {
	score := intercept
	for i, w := range coef {
		score += w * x[i]
	}
	return score
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load model artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse model artifact %s: %w", filepath.Base(path), err)
	}
	return nil
}
