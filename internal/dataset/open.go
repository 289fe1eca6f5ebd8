package dataset

import (
	"path/filepath"
	"strings"
)

// OpenRepository picks a file-backed Repository implementation by extension.
func OpenRepository(path string) Repository {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &XLSXRepository{Path: path}
	}
	return &CSVRepository{Path: path}
}

// OpenRankingIndex picks a file-backed RankingIndex implementation by extension.
func OpenRankingIndex(path string) RankingIndex {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &XLSXRankingIndex{Path: path}
	}
	return &CSVRankingIndex{Path: path}
}
