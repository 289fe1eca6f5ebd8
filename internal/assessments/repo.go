package assessments

import "context"

// Repo defines persistence operations for assessments.
type Repo interface {
	Create(ctx context.Context, a Assessment) error
	GetByID(ctx context.Context, assessmentID string) (Assessment, error)
	ListByCertificate(ctx context.Context, certificateID string, limit int) ([]Assessment, error)
}
