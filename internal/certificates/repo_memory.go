package certificates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Certificate
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Certificate)}
}

// Create stores a certificate.
func (r *MemoryRepo) Create(ctx context.Context, cert Certificate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[cert.ID] = cert
	return nil
}

// GetByID returns a certificate by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, certificateID string) (Certificate, error) {
	if err := ctx.Err(); err != nil {
		return Certificate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cert, ok := r.data[certificateID]
	if !ok {
		return Certificate{}, ErrNotFound
	}
	return cert, nil
}

// List returns certificates, newest first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	certs := make([]Certificate, 0, len(r.data))
	for _, cert := range r.data {
		certs = append(certs, cert)
	}
	r.mu.RUnlock()

	sort.Slice(certs, func(i, j int) bool {
		return certs[i].CreatedAt.After(certs[j].CreatedAt)
	})

	if offset >= len(certs) {
		return []Certificate{}, nil
	}
	end := len(certs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return certs[offset:end], nil
}
