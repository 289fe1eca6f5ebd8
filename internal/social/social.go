package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Stats is a free-form bag of profile metrics (followers, posts, likes).
// The shape depends on the network the URL points at.
type Stats map[string]any

// StatsProvider fetches public metrics for a social profile URL.
type StatsProvider interface {
	Fetch(ctx context.Context, profileURL string) (Stats, error)
}

// HTTPProvider delegates to an external scraping service over HTTP JSON.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider constructs a provider for the service at baseURL.
func NewHTTPProvider(baseURL string) (*HTTPProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("social stats service URL is required")
	}
	return &HTTPProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Fetch asks the service for the profile's metrics.
func (p *HTTPProvider) Fetch(ctx context.Context, profileURL string) (Stats, error) {
	endpoint := p.baseURL + "/stats?url=" + url.QueryEscape(profileURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("social stats request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("social stats status %d", resp.StatusCode)
	}

	var stats Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("social stats response parse: %w", err)
	}
	return stats, nil
}

// Noop returns no metrics; used when no service is configured.
type Noop struct{}

func (Noop) Fetch(ctx context.Context, profileURL string) (Stats, error) {
	return Stats{}, nil
}
