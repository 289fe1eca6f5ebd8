package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CSVRepository reads the scored dataset from a CSV file. The file is read
// fresh on every lookup; an externally refreshed dataset is picked up without
// a restart.
type CSVRepository struct {
	Path string
}

// LookupByCaseID scans the CSV for the first row whose identifier matches.
// Rows with unparseable identifiers are skipped.
func (r *CSVRepository) LookupByCaseID(ctx context.Context, caseID int64) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}

	rows, err := readCSV(r.Path)
	if err != nil {
		return Record{}, false, err
	}
	return lookupInRows(rows, caseID)
}

// CSVRankingIndex reads the ranking index from a CSV file. A missing file is
// treated as an empty set, not an error.
type CSVRankingIndex struct {
	Path string
}

// Contains reports whether the identifier appears in the index.
func (r *CSVRankingIndex) Contains(ctx context.Context, caseID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	rows, err := readCSV(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return containsInRows(rows, caseID)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return rows, nil
}

func lookupInRows(rows [][]string, caseID int64) (Record, bool, error) {
	if len(rows) == 0 {
		return Record{}, false, nil
	}
	header := rows[0]
	idx := columnIndex(header, CaseIDColumn)
	if idx < 0 {
		return Record{}, false, fmt.Errorf("dataset has no %q column", CaseIDColumn)
	}
	for _, row := range rows[1:] {
		if idx >= len(row) {
			continue
		}
		id, ok := parseCaseID(row[idx])
		if !ok || id != caseID {
			continue
		}
		return recordFromRow(header, row, id), true, nil
	}
	return Record{}, false, nil
}

func containsInRows(rows [][]string, caseID int64) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}
	header := rows[0]
	idx := columnIndex(header, CaseIDColumn)
	if idx < 0 {
		return false, fmt.Errorf("ranking index has no %q column", CaseIDColumn)
	}
	for _, row := range rows[1:] {
		if idx >= len(row) {
			continue
		}
		if id, ok := parseCaseID(row[idx]); ok && id == caseID {
			return true, nil
		}
	}
	return false, nil
}
