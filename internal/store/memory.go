package store

import (
	"time"

	"github.com/ecodeclub/ekit/slice"

	"github.com/algebra-helper/analytics/internal/clock"
	"github.com/algebra-helper/analytics/internal/domain/answer"
)

// MemoryStore keeps records in a slice. It is safe for concurrent readers
// because nothing mutates it after construction.
type MemoryStore struct {
	records []answer.Record
	clock   clock.Clock
}

func NewMemory(c clock.Clock, records []answer.Record) *MemoryStore {
	if c == nil {
		c = clock.System()
	}
	owned := make([]answer.Record, len(records))
	copy(owned, records)
	return &MemoryStore{records: owned, clock: c}
}

func (s *MemoryStore) All() ([]answer.Record, error) {
	out := make([]answer.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) FilterByRange(since, until *time.Time) ([]answer.Record, error) {
	r := Range{Since: since, Until: until}
	return slice.FindAll(s.records, func(rec answer.Record) bool {
		return r.Contains(rec.Timestamp)
	}), nil
}

func (s *MemoryStore) FilterLastNDays(n int) ([]answer.Record, error) {
	c := cutoff(s.clock, n)
	return s.FilterByRange(&c, nil)
}
