package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/xuri/excelize/v2"
)

// XLSXRepository reads the scored dataset from an XLSX workbook (first
// sheet). Like the CSV store, the file is read fresh on every lookup.
type XLSXRepository struct {
	Path string
}

// LookupByCaseID scans the workbook for the first row whose identifier matches.
func (r *XLSXRepository) LookupByCaseID(ctx context.Context, caseID int64) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}

	rows, err := readXLSX(r.Path)
	if err != nil {
		return Record{}, false, err
	}
	return lookupInRows(rows, caseID)
}

// XLSXRankingIndex reads the ranking index from an XLSX workbook. A missing
// file is treated as an empty set.
type XLSXRankingIndex struct {
	Path string
}

// Contains reports whether the identifier appears in the index.
func (r *XLSXRankingIndex) Contains(ctx context.Context, caseID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	rows, err := readXLSX(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return containsInRows(rows, caseID)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("dataset %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return rows, nil
}
