package certificates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new certificate.
func (r *PGRepo) Create(ctx context.Context, cert Certificate) error {
	const query = `
INSERT INTO certificates (
	id, file_name, mime_type, size_bytes, storage_provider, storage_key,
	extracted_text_key, organization_name, case_id, tax_id, social_url, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		cert.ID,
		cert.FileName,
		cert.MimeType,
		cert.SizeBytes,
		cert.StorageProvider,
		cert.StorageKey,
		cert.ExtractedTextKey,
		nullString(cert.OrganizationName),
		nullString(cert.CaseID),
		nullString(cert.TaxID),
		nullString(cert.SocialURL),
		cert.CreatedAt,
	)
	return err
}

// GetByID returns a certificate by ID.
func (r *PGRepo) GetByID(ctx context.Context, certificateID string) (Certificate, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_provider, storage_key,
       extracted_text_key, organization_name, case_id, tax_id, social_url, created_at
FROM certificates
WHERE id = $1
LIMIT 1`
	var cert Certificate
	var organization, caseID, taxID, socialURL sql.NullString
	err := r.DB.QueryRowContext(ctx, query, certificateID).Scan(
		&cert.ID,
		&cert.FileName,
		&cert.MimeType,
		&cert.SizeBytes,
		&cert.StorageProvider,
		&cert.StorageKey,
		&cert.ExtractedTextKey,
		&organization,
		&caseID,
		&taxID,
		&socialURL,
		&cert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Certificate{}, ErrNotFound
		}
		return Certificate{}, err
	}
	cert.OrganizationName = organization.String
	cert.CaseID = caseID.String
	cert.TaxID = taxID.String
	cert.SocialURL = socialURL.String
	return cert, nil
}

// List returns certificates, newest first, honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Certificate, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_provider, storage_key,
       extracted_text_key, organization_name, case_id, tax_id, social_url, created_at
FROM certificates
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Certificate
	for rows.Next() {
		var cert Certificate
		var organization, caseID, taxID, socialURL sql.NullString
		if err := rows.Scan(
			&cert.ID,
			&cert.FileName,
			&cert.MimeType,
			&cert.SizeBytes,
			&cert.StorageProvider,
			&cert.StorageKey,
			&cert.ExtractedTextKey,
			&organization,
			&caseID,
			&taxID,
			&socialURL,
			&cert.CreatedAt,
		); err != nil {
			return nil, err
		}
		cert.OrganizationName = organization.String
		cert.CaseID = caseID.String
		cert.TaxID = taxID.String
		cert.SocialURL = socialURL.String
		out = append(out, cert)
	}
	return out, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
