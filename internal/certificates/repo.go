package certificates

import "context"

// Repo defines persistence operations for certificates.
type Repo interface {
	Create(ctx context.Context, cert Certificate) error
	GetByID(ctx context.Context, certificateID string) (Certificate, error)
	List(ctx context.Context, limit, offset int) ([]Certificate, error)
}
