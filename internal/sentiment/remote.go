package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteScorer calls an external sentiment-analysis service over HTTP JSON.
// The service labels each text POSITIVE/NEGATIVE/NEUTRAL with a confidence.
type RemoteScorer struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemoteScorer constructs a client for the service at baseURL.
func NewRemoteScorer(baseURL string) (*RemoteScorer, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("sentiment service URL is required")
	}
	return &RemoteScorer{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *RemoteScorer) Name() string { return "remote" }

type analyzeRequest struct {
	Texts []string `json:"texts"`
}

type analyzeResponse struct {
	Results []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"results"`
	Error string `json:"error,omitempty"`
}

// Score sends the batch to the service and averages the mapped confidences:
// a POSITIVE label keeps its confidence, NEGATIVE inverts it, anything else
// counts as neutral.
func (c *RemoteScorer) Score(ctx context.Context, reviews []string) (float64, error) {
	if len(reviews) == 0 {
		return 0.5, nil
	}

	payload, err := json.Marshal(analyzeRequest{Texts: reviews})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sentiment service request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("sentiment service status %d", resp.StatusCode)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("sentiment service response parse: %w", err)
	}
	if parsed.Error != "" {
		return 0, fmt.Errorf("sentiment service error: %s", parsed.Error)
	}
	if len(parsed.Results) == 0 {
		return 0, fmt.Errorf("sentiment service returned no results")
	}

	total := 0.0
	for _, r := range parsed.Results {
		label := strings.ToUpper(r.Label)
		switch {
		case strings.Contains(label, "POS"):
			total += r.Score
		case strings.Contains(label, "NEG"):
			total += 1 - r.Score
		default:
			total += 0.5
		}
	}
	return total / float64(len(parsed.Results)), nil
}

// Ping checks that the service answers its health endpoint.
func (c *RemoteScorer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sentiment service unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sentiment service health status %d", resp.StatusCode)
	}
	return nil
}
