package risk

import (
	"os"
	"path/filepath"
	"testing"
)

func writeModelDir(t *testing.T, cols, scaler, classifier string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"feature_columns.json": cols,
		"scaler.json":          scaler,
		"classifier.json":      classifier,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadModel(t *testing.T) {
	dir := writeModelDir(t,
		`["expediente", "liquidez", "endeudamiento"]`,
		`{"mean": [1.0, 2.0], "scale": [0.5, 0.0]}`,
		`{"classes": [0, 1, 2], "coef": [[1, 0], [0, 1], [0, 0]], "intercept": [0, 0, 0]}`,
	)

	m, err := LoadModel(dir)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if len(m.FeatureColumns) != 2 {
		t.Fatalf("FeatureColumns = %v; identifier column must be excluded", m.FeatureColumns)
	}
	if m.FeatureColumns[0] != "liquidez" || m.FeatureColumns[1] != "endeudamiento" {
		t.Fatalf("FeatureColumns = %v; manifest order must be preserved", m.FeatureColumns)
	}
	if m.Scale[1] != 1 {
		t.Fatalf("Scale[1] = %v; zero scale must be replaced by 1", m.Scale[1])
	}
}

func TestLoadModelMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "feature_columns.json"), []byte(`["a"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadModel(dir); err == nil {
		t.Fatal("expected error when scaler.json is missing")
	}
}

func TestLoadModelInconsistentShapes(t *testing.T) {
	dir := writeModelDir(t,
		`["a", "b"]`,
		`{"mean": [0], "scale": [1]}`,
		`{"classes": [0, 1], "coef": [[1, 0], [0, 1]], "intercept": [0, 0]}`,
	)
	if _, err := LoadModel(dir); err == nil {
		t.Fatal("expected error when scaler length disagrees with features")
	}
}

func TestModelPredictArgmax(t *testing.T) {
	m := &Model{
		FeatureColumns: []string{"a", "b"},
		Mean:           []float64{0, 0},
		Scale:          []float64{1, 1},
		Classes:        []int{0, 1, 2},
		Coef:           [][]float64{{1, 0}, {0, 1}, {0, 0}},
		Intercept:      []float64{0, 0, 0},
	}

	if got := m.Predict([]float64{5, 1}); got != 0 {
		t.Fatalf("Predict(5,1) = %d; want 0", got)
	}
	if got := m.Predict([]float64{1, 5}); got != 1 {
		t.Fatalf("Predict(1,5) = %d; want 1", got)
	}
	if got := m.Predict([]float64{-3, -3}); got != 2 {
		t.Fatalf("Predict(-3,-3) = %d; want 2", got)
	}
}

func TestModelPredictStandardizes(t *testing.T) {
	m := &Model{
		FeatureColumns: []string{"a"},
		Mean:           []float64{10},
		Scale:          []float64{2},
		Classes:        []int{0, 1},
		Coef:           [][]float64{{-1}, {1}},
		Intercept:      []float64{0, 0},
	}

	// 14 standardizes to +2, so the positive-weight class wins.
	if got := m.Predict([]float64{14}); got != 1 {
		t.Fatalf("Predict(14) = %d; want 1", got)
	}
	// 6 standardizes to -2.
	if got := m.Predict([]float64{6}); got != 0 {
		t.Fatalf("Predict(6) = %d; want 0", got)
	}
}
