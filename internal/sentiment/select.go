package sentiment

import (
	"context"
	"time"

	"certrisk-backend/internal/shared/telemetry"
)

// New picks the scorer for the process lifetime. The remote service is used
// only when a URL is configured and the service answers a startup probe;
// otherwise the lexicon scorer is used permanently. The choice is made once
// and never revisited at request time.
func New(serviceURL string) Scorer {
	if serviceURL == "" {
		telemetry.Info("sentiment scorer selected", map[string]any{"scorer": "lexicon"})
		return LexiconScorer{}
	}

	remote, err := NewRemoteScorer(serviceURL)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = remote.Ping(ctx)
	}
	if err != nil {
		telemetry.Error("sentiment service probe failed, using lexicon", map[string]any{"error": err.Error()})
		return LexiconScorer{}
	}

	telemetry.Info("sentiment scorer selected", map[string]any{"scorer": "remote", "url": serviceURL})
	return remote
}
