package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"certrisk-backend/internal/social"
)

// PGRepo implements Repo using Postgres. Feature snapshots and social
// metrics are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, a Assessment) error {
	const query = `
INSERT INTO assessments (
	id, certificate_id, case_id, status, pred_num, pred_text,
	features, total_score, message, social, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	features, err := marshalJSONB(a.Features)
	if err != nil {
		return err
	}
	socialJSON, err := marshalJSONB(a.Social)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		a.ID,
		nullString(a.CertificateID),
		a.CaseID,
		a.Status,
		a.PredNum,
		nullString(a.PredText),
		features,
		a.TotalScore,
		nullString(a.Message),
		socialJSON,
		a.CreatedAt,
	)
	return err
}

// GetByID returns an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	const query = `
SELECT id, certificate_id, case_id, status, pred_num, pred_text,
       features, total_score, message, social, created_at
FROM assessments
WHERE id = $1
LIMIT 1`
	a, err := scanAssessment(r.DB.QueryRowContext(ctx, query, assessmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return a, nil
}

// ListByCertificate returns a certificate's assessments, newest first.
func (r *PGRepo) ListByCertificate(ctx context.Context, certificateID string, limit int) ([]Assessment, error) {
	const query = `
SELECT id, certificate_id, case_id, status, pred_num, pred_text,
       features, total_score, message, social, created_at
FROM assessments
WHERE certificate_id = $1
ORDER BY created_at DESC
LIMIT $2`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, certificateID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var certificateID, predText, message sql.NullString
	var predNum sql.NullInt64
	var totalScore sql.NullFloat64
	var features, socialJSON []byte
	if err := row.Scan(
		&a.ID,
		&certificateID,
		&a.CaseID,
		&a.Status,
		&predNum,
		&predText,
		&features,
		&totalScore,
		&message,
		&socialJSON,
		&a.CreatedAt,
	); err != nil {
		return Assessment{}, err
	}
	a.CertificateID = certificateID.String
	a.PredText = predText.String
	a.Message = message.String
	if predNum.Valid {
		v := int(predNum.Int64)
		a.PredNum = &v
	}
	if totalScore.Valid {
		v := totalScore.Float64
		a.TotalScore = &v
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &a.Features); err != nil {
			return Assessment{}, err
		}
	}
	if len(socialJSON) > 0 {
		if err := json.Unmarshal(socialJSON, &a.Social); err != nil {
			return Assessment{}, err
		}
	}
	return a, nil
}

func marshalJSONB(v any) (any, error) {
	switch t := v.(type) {
	case map[string]float64:
		if t == nil {
			return nil, nil
		}
	case social.Stats:
		if t == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
