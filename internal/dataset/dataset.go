package dataset

import (
	"context"
	"strconv"
	"strings"
)

// CaseIDColumn is the identifier column joining certificates to the scored
// dataset.
const CaseIDColumn = "expediente"

// Record is one row of the scored dataset: the case identifier plus every
// column whose value parsed as a number.
type Record struct {
	CaseID int64
	Values map[string]float64
}

// Value returns the named column value and whether it exists on the record.
func (r Record) Value(name string) (float64, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Repository is read-only access to the scored dataset.
type Repository interface {
	LookupByCaseID(ctx context.Context, caseID int64) (Record, bool, error)
}

// RankingIndex is a read-only membership check against the secondary list of
// known small/medium enterprises.
type RankingIndex interface {
	Contains(ctx context.Context, caseID int64) (bool, error)
}

// parseCaseID coerces a raw identifier cell to int64, tolerating datasets
// where the column was read as text or as a float ("123.0"). Unparseable
// values report ok=false and are treated as non-matches by callers.
func parseCaseID(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f), true
	}
	return 0, false
}

// recordFromRow builds a Record from a header row and a data row, keeping
// only cells that parse as numbers.
func recordFromRow(header []string, row []string, caseID int64) Record {
	values := make(map[string]float64, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || name == CaseIDColumn || i >= len(row) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err == nil {
			values[name] = v
		}
	}
	return Record{CaseID: caseID, Values: values}
}

func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}
