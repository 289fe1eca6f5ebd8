package certificates

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"certrisk-backend/internal/audit"
	"certrisk-backend/internal/extract"
	"certrisk-backend/internal/shared/metrics"
	"certrisk-backend/internal/shared/storage/object"
	"certrisk-backend/internal/shared/telemetry"
)

const storeNamespace = "certificates"

// Service contains business logic for certificates.
type Service struct {
	Store           object.ObjectStore
	Repo            Repo
	Audit           audit.Logger
	StorageProvider string
}

// Upload extracts text from the uploaded PDF, parses the identifying fields,
// stores the file and records the certificate. A PDF that cannot be read
// yields ErrUnreadable; field extraction itself never fails.
func (s *Service) Upload(ctx context.Context, fileName, mimeType, socialURL string, r io.Reader) (Certificate, error) {
	if fileName == "" {
		return Certificate{}, ErrInvalidInput
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Certificate{}, fmt.Errorf("read upload: %w", err)
	}

	text, err := extract.TextFromBytes(ctx, raw, mimeType, fileName)
	if err != nil {
		return Certificate{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	fields := Parse(Normalize(text))

	storageKey, size, detectedMime, err := s.Store.Save(ctx, storeNamespace, fileName, bytes.NewReader(raw))
	if err != nil {
		return Certificate{}, fmt.Errorf("store certificate: %w", err)
	}

	extractedKey := storageKey + ".extracted.txt"
	if _, err := s.Store.SaveWithKey(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Error("certificate.extracted_text.save_failed", map[string]any{
			"err": err.Error(),
			"key": extractedKey,
		})
		extractedKey = ""
	}

	cert := Certificate{
		ID:               uuid.NewString(),
		FileName:         fileName,
		MimeType:         detectedMime,
		SizeBytes:        size,
		StorageProvider:  s.StorageProvider,
		StorageKey:       storageKey,
		ExtractedTextKey: extractedKey,
		OrganizationName: fields.OrganizationName,
		CaseID:           fields.CaseID,
		TaxID:            fields.TaxID,
		SocialURL:        strings.TrimSpace(socialURL),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, cert); err != nil {
		return Certificate{}, err
	}

	// Audit is best-effort: a failed append never fails the upload.
	if s.Audit != nil && (cert.OrganizationName != "" || cert.CaseID != "" || cert.TaxID != "") {
		if err := s.Audit.Append(ctx, cert.OrganizationName, cert.CaseID, cert.TaxID); err != nil {
			telemetry.Error("certificate.audit.append_failed", map[string]any{
				"err":            err.Error(),
				"certificate_id": cert.ID,
			})
		}
	}

	metrics.IncCertificateUploaded()
	return cert, nil
}

// Get returns a certificate by ID.
func (s *Service) Get(ctx context.Context, certificateID string) (Certificate, error) {
	if certificateID == "" {
		return Certificate{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, certificateID)
}

// List returns certificates, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Certificate, error) {
	return s.Repo.List(ctx, limit, offset)
}
