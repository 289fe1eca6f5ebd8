package assessments

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"certrisk-backend/internal/certificates"
	"certrisk-backend/internal/risk"
	"certrisk-backend/internal/shared/metrics"
	"certrisk-backend/internal/shared/telemetry"
	"certrisk-backend/internal/social"
)

// Service runs the assessment pipeline: resolve the case identifier against
// the scored dataset, classify, fetch social metrics when a profile URL is
// known, and persist the outcome.
type Service struct {
	Repo         Repo
	Certificates *certificates.Service
	Resolver     *risk.Resolver
	Social       social.StatsProvider
}

// CreateInput identifies what to assess: a previously uploaded certificate
// or a raw case identifier. SocialURL overrides the certificate's one.
type CreateInput struct {
	CertificateID string
	CaseID        string
	SocialURL     string
}

// Create runs one assessment. Expected pipeline outcomes (unknown case,
// not eligible, missing features, absent identifier) are stored results,
// not errors.
func (s *Service) Create(ctx context.Context, in CreateInput) (Assessment, error) {
	started := metrics.NowMillis()

	caseID := strings.TrimSpace(in.CaseID)
	socialURL := strings.TrimSpace(in.SocialURL)
	if in.CertificateID == "" && caseID == "" {
		return Assessment{}, ErrInvalidInput
	}

	if in.CertificateID != "" {
		cert, err := s.Certificates.Get(ctx, in.CertificateID)
		if err != nil {
			return Assessment{}, err
		}
		caseID = cert.CaseID
		if socialURL == "" {
			socialURL = cert.SocialURL
		}
	}

	res, err := s.Resolver.Assess(ctx, caseID)
	if err != nil {
		return Assessment{}, err
	}

	// Social metrics are best-effort: a scrape failure is reported inside
	// the result, never as a request failure.
	var stats social.Stats
	if socialURL != "" && res.Status != risk.StatusNoIdentifier {
		stats, err = s.Social.Fetch(ctx, socialURL)
		if err != nil {
			telemetry.Error("assessment.social.fetch_failed", map[string]any{
				"err": err.Error(),
				"url": socialURL,
			})
			stats = social.Stats{"error": err.Error()}
		}
	}

	a := Assessment{
		ID:            uuid.NewString(),
		CertificateID: in.CertificateID,
		CaseID:        caseID,
		Status:        string(res.Status),
		PredNum:       res.PredNum,
		PredText:      res.PredText,
		Features:      res.Features,
		TotalScore:    res.TotalScore,
		Message:       res.Message,
		Social:        stats,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return Assessment{}, err
	}

	metrics.IncAssessment()
	if res.Status == risk.StatusOK {
		metrics.IncAssessmentTier()
	}
	metrics.ObserveAssessmentDurationMs(metrics.NowMillis() - started)
	return a, nil
}

// Get returns an assessment by ID.
func (s *Service) Get(ctx context.Context, assessmentID string) (Assessment, error) {
	if assessmentID == "" {
		return Assessment{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, assessmentID)
}

// ListByCertificate returns a certificate's assessment history, newest first.
func (s *Service) ListByCertificate(ctx context.Context, certificateID string, limit int) ([]Assessment, error) {
	if certificateID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByCertificate(ctx, certificateID, limit)
}
