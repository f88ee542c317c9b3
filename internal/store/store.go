package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	"github.com/algebra-helper/analytics/internal/clock"
	"github.com/algebra-helper/analytics/internal/domain/answer"
)

var (
	ErrUnknownBackend = errors.New("unknown store backend")
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// RecordStore holds the immutable records of one export and answers range
// queries over them. Results are fresh slices in insertion order.
type RecordStore interface {
	All() ([]answer.Record, error)
	// FilterByRange keeps records with since <= Timestamp <= until.
	// A nil bound leaves that side open.
	FilterByRange(since, until *time.Time) ([]answer.Record, error)
	// FilterLastNDays keeps records no older than n days before now.
	FilterLastNDays(n int) ([]answer.Record, error)
}

// New builds the store named by backend over records.
func New(backend string, c clock.Clock, records []answer.Record) (RecordStore, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory(c, records), nil
	case BackendSQLite:
		return NewSQLite(c, records)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "backend %q", backend)
}

// ParseError reports a date bound that could not be understood.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseBound reads a date bound in any of the common ISO-like layouts.
// Strings without a zone are taken in loc. An empty string is no bound.
func ParseBound(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return nil, &ParseError{Value: s, Err: err}
	}
	return &t, nil
}

// Range is a pair of optional inclusive bounds.
type Range struct {
	Since *time.Time
	Until *time.Time
}

// ParseRange parses both bounds, failing on the first bad one.
func ParseRange(since, until string, loc *time.Location) (Range, error) {
	var (
		r   Range
		err error
	)
	if r.Since, err = ParseBound(since, loc); err != nil {
		return Range{}, err
	}
	if r.Until, err = ParseBound(until, loc); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Contains(t time.Time) bool {
	if r.Since != nil && t.Before(*r.Since) {
		return false
	}
	if r.Until != nil && t.After(*r.Until) {
		return false
	}
	return true
}

func cutoff(c clock.Clock, days int) time.Time {
	return c.Now().Add(-time.Duration(days) * 24 * time.Hour)
}
