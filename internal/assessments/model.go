package assessments

import (
	"time"

	"certrisk-backend/internal/social"
)

// Assessment is one persisted classification of a case identifier.
type Assessment struct {
	ID            string
	CertificateID string
	CaseID        string
	Status        string
	PredNum       *int
	PredText      string
	Features      map[string]float64
	TotalScore    *float64
	Message       string
	Social        social.Stats
	CreatedAt     time.Time
}
