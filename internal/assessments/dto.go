package assessments

import (
	"time"

	"certrisk-backend/internal/social"
)

// AssessmentResponse is the outward-facing representation of an assessment.
type AssessmentResponse struct {
	AssessmentID  string             `json:"assessmentId"`
	CertificateID string             `json:"certificateId,omitempty"`
	CaseID        string             `json:"caseId,omitempty"`
	Status        string             `json:"status"`
	PredNum       *int               `json:"predNum,omitempty"`
	PredText      string             `json:"predText,omitempty"`
	Features      map[string]float64 `json:"features"`
	TotalScore    *float64           `json:"totalScore,omitempty"`
	Message       string             `json:"msg,omitempty"`
	Social        social.Stats       `json:"social"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func toResponse(a Assessment) AssessmentResponse {
	features := a.Features
	if features == nil {
		features = map[string]float64{}
	}
	stats := a.Social
	if stats == nil {
		stats = social.Stats{}
	}
	return AssessmentResponse{
		AssessmentID:  a.ID,
		CertificateID: a.CertificateID,
		CaseID:        a.CaseID,
		Status:        a.Status,
		PredNum:       a.PredNum,
		PredText:      a.PredText,
		Features:      features,
		TotalScore:    a.TotalScore,
		Message:       a.Message,
		Social:        stats,
		CreatedAt:     a.CreatedAt,
	}
}
