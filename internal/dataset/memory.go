package dataset

import "context"

// MemoryRepository is an in-memory Repository for tests and fixtures.
type MemoryRepository struct {
	Records map[int64]Record
}

// NewMemoryRepository constructs a MemoryRepository from records.
func NewMemoryRepository(records ...Record) *MemoryRepository {
	m := &MemoryRepository{Records: make(map[int64]Record, len(records))}
	for _, rec := range records {
		m.Records[rec.CaseID] = rec
	}
	return m
}

// LookupByCaseID returns the record for the identifier, if any.
func (m *MemoryRepository) LookupByCaseID(ctx context.Context, caseID int64) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}
	rec, ok := m.Records[caseID]
	return rec, ok, nil
}

// MemoryRankingIndex is an in-memory RankingIndex for tests and fixtures.
type MemoryRankingIndex struct {
	IDs map[int64]struct{}
}

// NewMemoryRankingIndex constructs a MemoryRankingIndex from identifiers.
func NewMemoryRankingIndex(ids ...int64) *MemoryRankingIndex {
	m := &MemoryRankingIndex{IDs: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		m.IDs[id] = struct{}{}
	}
	return m
}

// Contains reports whether the identifier is in the index.
func (m *MemoryRankingIndex) Contains(ctx context.Context, caseID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := m.IDs[caseID]
	return ok, nil
}
