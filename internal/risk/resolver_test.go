package risk

import (
	"context"
	"strings"
	"testing"

	"certrisk-backend/internal/dataset"
)

func testModel() *Model {
	return &Model{
		FeatureColumns: []string{"liquidez", "endeudamiento"},
		Mean:           []float64{0, 0},
		Scale:          []float64{1, 1},
		Classes:        []int{0, 1, 2},
		Coef:           [][]float64{{1, 0}, {0, 1}, {0, 0}},
		Intercept:      []float64{0, 0, 0},
	}
}

func testResolver(repo dataset.Repository, ranking dataset.RankingIndex) *Resolver {
	return &Resolver{Dataset: repo, Ranking: ranking, Model: testModel()}
}

func TestAssessNoIdentifier(t *testing.T) {
	r := testResolver(dataset.NewMemoryRepository(), dataset.NewMemoryRankingIndex())

	for _, raw := range []string{"", "abc", "12a34"} {
		res, err := r.Assess(context.Background(), raw)
		if err != nil {
			t.Fatalf("Assess(%q): %v", raw, err)
		}
		if res.Status != StatusNoIdentifier {
			t.Fatalf("Assess(%q) status = %q; want %q", raw, res.Status, StatusNoIdentifier)
		}
		if res.Message != "No se pudo extraer el N° de expediente del PDF." {
			t.Fatalf("Assess(%q) message = %q", raw, res.Message)
		}
		if res.PredNum != nil {
			t.Fatalf("Assess(%q) has a tier; only ok results carry one", raw)
		}
	}
}

func TestAssessUnknownCase(t *testing.T) {
	r := testResolver(dataset.NewMemoryRepository(), dataset.NewMemoryRankingIndex())

	res, err := r.Assess(context.Background(), "99999")
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Status != StatusUnknownCase {
		t.Fatalf("status = %q; want %q", res.Status, StatusUnknownCase)
	}
	if res.Message != "Alerta: no existe expediente en la Super de Compañías" {
		t.Fatalf("message = %q", res.Message)
	}
	if res.PredNum != nil || res.TotalScore != nil || len(res.Features) != 0 {
		t.Fatal("unknown case must carry no tier, score or snapshot")
	}
}

func TestAssessNotEligible(t *testing.T) {
	r := testResolver(dataset.NewMemoryRepository(), dataset.NewMemoryRankingIndex(55555))

	res, err := r.Assess(context.Background(), "55555")
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Status != StatusNotEligible {
		t.Fatalf("status = %q; want %q", res.Status, StatusNotEligible)
	}
	if res.Message != "Su compañía no es PYME" {
		t.Fatalf("message = %q", res.Message)
	}
}

func TestAssessMissingFeatures(t *testing.T) {
	repo := dataset.NewMemoryRepository(dataset.Record{
		CaseID: 12345,
		Values: map[string]float64{"liquidez": 1.2, "score_final": 0.8},
	})
	r := testResolver(repo, dataset.NewMemoryRankingIndex())

	res, err := r.Assess(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Status != StatusMissingFeatures {
		t.Fatalf("status = %q; want %q", res.Status, StatusMissingFeatures)
	}
	if !strings.Contains(res.Message, "endeudamiento") {
		t.Fatalf("message = %q; want it to name the missing column", res.Message)
	}
	if res.PredNum != nil {
		t.Fatal("missing features must not produce a tier")
	}
	if len(res.Features) != 0 {
		t.Fatal("missing features must leave the snapshot empty")
	}
	if res.TotalScore == nil || *res.TotalScore != 0.8 {
		t.Fatalf("TotalScore = %v; want 0.8 from score_final", res.TotalScore)
	}
}

func TestAssessMissingFeaturesCapsMessage(t *testing.T) {
	cols := make([]string, 15)
	for i := range cols {
		cols[i] = strings.Repeat("c", i+1)
	}
	m := testModel()
	m.FeatureColumns = cols
	m.Mean = make([]float64, 15)
	m.Scale = make([]float64, 15)
	for i := range m.Scale {
		m.Scale[i] = 1
	}
	repo := dataset.NewMemoryRepository(dataset.Record{CaseID: 1, Values: map[string]float64{}})
	r := &Resolver{Dataset: repo, Ranking: dataset.NewMemoryRankingIndex(), Model: m}

	res, err := r.Assess(context.Background(), "1")
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if strings.Contains(res.Message, cols[10]) {
		t.Fatalf("message = %q; columns past the tenth must be omitted", res.Message)
	}
	if !strings.Contains(res.Message, cols[9]) {
		t.Fatalf("message = %q; first ten columns must be listed", res.Message)
	}
}

func TestAssessOK(t *testing.T) {
	repo := dataset.NewMemoryRepository(dataset.Record{
		CaseID: 12345,
		Values: map[string]float64{"liquidez": 5, "endeudamiento": 1, "score_final": 0.42},
	})
	r := testResolver(repo, dataset.NewMemoryRankingIndex())

	res, err := r.Assess(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if res.Status != StatusOK {
		t.Fatalf("status = %q; want %q", res.Status, StatusOK)
	}
	if res.PredNum == nil || *res.PredNum != 0 || res.PredText != "Bajo" {
		t.Fatalf("prediction = %v %q; want 0 Bajo", res.PredNum, res.PredText)
	}
	if res.Features["liquidez"] != 5 || res.Features["endeudamiento"] != 1 {
		t.Fatalf("snapshot = %v; want unscaled row values", res.Features)
	}
	if res.TotalScore == nil || *res.TotalScore != 0.42 {
		t.Fatalf("TotalScore = %v; want 0.42", res.TotalScore)
	}
	if res.Message != "" {
		t.Fatalf("message = %q; ok results carry none", res.Message)
	}
}

func TestAssessVectorFollowsManifestOrder(t *testing.T) {
	// Swapping the two feature values flips the argmax, so a resolver that
	// ordered the vector by map iteration instead of the manifest would be
	// caught by one of the two cases.
	repo := dataset.NewMemoryRepository(
		dataset.Record{CaseID: 1, Values: map[string]float64{"liquidez": 5, "endeudamiento": 1}},
		dataset.Record{CaseID: 2, Values: map[string]float64{"liquidez": 1, "endeudamiento": 5}},
	)
	r := testResolver(repo, dataset.NewMemoryRankingIndex())

	res, err := r.Assess(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if res.PredText != "Bajo" {
		t.Fatalf("case 1 tier = %q; want Bajo", res.PredText)
	}
	res, err = r.Assess(context.Background(), "2")
	if err != nil {
		t.Fatal(err)
	}
	if res.PredText != "Medio" {
		t.Fatalf("case 2 tier = %q; want Medio", res.PredText)
	}
}
