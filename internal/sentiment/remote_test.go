package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteScorerMapsLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Texts) != 3 {
			t.Fatalf("got %d texts; want 3", len(req.Texts))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"label": "POSITIVE", "score": 0.9},
				{"label": "NEGATIVE", "score": 0.8},
				{"label": "NEUTRAL", "score": 0.99},
			},
		})
	}))
	defer srv.Close()

	scorer, err := NewRemoteScorer(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	got, err := scorer.Score(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// (0.9 + 0.2 + 0.5) / 3
	if !almostEqual(got, 1.6/3) {
		t.Fatalf("Score = %v; want %v", got, 1.6/3)
	}
}

func TestRemoteScorerEmptyBatchSkipsRequest(t *testing.T) {
	scorer, err := NewRemoteScorer("http://127.0.0.1:1")
	if err != nil {
		t.Fatal(err)
	}
	got, err := scorer.Score(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Fatalf("Score(nil) = %v; want 0.5", got)
	}
}

func TestRemoteScorerServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	scorer, err := NewRemoteScorer(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scorer.Score(context.Background(), []string{"a"}); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestNewFallsBackWhenProbeFails(t *testing.T) {
	if got := New("http://127.0.0.1:1"); got.Name() != "lexicon" {
		t.Fatalf("scorer = %q; want lexicon when the service is unreachable", got.Name())
	}
	if got := New(""); got.Name() != "lexicon" {
		t.Fatalf("scorer = %q; want lexicon when no URL is configured", got.Name())
	}
}

func TestNewSelectsRemoteWhenHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if got := New(srv.URL); got.Name() != "remote" {
		t.Fatalf("scorer = %q; want remote when the probe succeeds", got.Name())
	}
}
