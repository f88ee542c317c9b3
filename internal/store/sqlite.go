// internal/store/sqlite.go
package store

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/algebra-helper/analytics/internal/clock"
	"github.com/algebra-helper/analytics/internal/domain/answer"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    position INTEGER PRIMARY KEY,
    answered_at INTEGER NOT NULL,
    topic TEXT NOT NULL,
    question TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    chosen_answer TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    is_dont_know INTEGER NOT NULL,
    time_spent REAL NOT NULL,
    advice TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_answered_at ON records(answered_at);
`

const selectRecords = `SELECT answered_at, topic, question, correct_answer, chosen_answer,
    is_correct, is_dont_know, time_spent, advice FROM records`

// SQLiteStore serves range queries from an in-memory SQLite database.
// Nothing is written to disk; the database lives as long as the store.
type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLite(c clock.Clock, records []answer.Record) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create schema")
	}

	if c == nil {
		c = clock.System()
	}
	s := &SQLiteStore{db: db, clock: c}
	if err := s.load(records); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) load(records []answer.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin load")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO records (position, answered_at, topic, question,
        correct_answer, chosen_answer, is_correct, is_dont_know, time_spent, advice)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for i, r := range records {
		_, err = stmt.Exec(
			i, r.Timestamp.UnixMilli(), string(r.Topic), r.Question,
			r.CorrectAnswer, r.ChosenAnswer, r.IsCorrect, r.IsDontKnow,
			r.TimeSpentSeconds, r.Advice,
		)
		if err != nil {
			return errors.Wrapf(err, "insert record %d", i)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) All() ([]answer.Record, error) {
	return s.query(selectRecords + " ORDER BY position")
}

func (s *SQLiteStore) FilterByRange(since, until *time.Time) ([]answer.Record, error) {
	q := selectRecords + " WHERE 1 = 1"
	var args []any
	if since != nil {
		q += " AND answered_at >= ?"
		args = append(args, ceilMillis(*since))
	}
	if until != nil {
		q += " AND answered_at <= ?"
		args = append(args, until.UnixMilli())
	}
	return s.query(q+" ORDER BY position", args...)
}

func (s *SQLiteStore) FilterLastNDays(n int) ([]answer.Record, error) {
	c := cutoff(s.clock, n)
	return s.FilterByRange(&c, nil)
}

func (s *SQLiteStore) query(q string, args ...any) ([]answer.Record, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query records")
	}
	defer rows.Close()

	records := []answer.Record{}
	for rows.Next() {
		var (
			r     answer.Record
			ms    int64
			topic string
		)
		if err := rows.Scan(&ms, &topic, &r.Question, &r.CorrectAnswer, &r.ChosenAnswer,
			&r.IsCorrect, &r.IsDontKnow, &r.TimeSpentSeconds, &r.Advice); err != nil {
			return nil, errors.Wrap(err, "scan record")
		}
		r.Timestamp = time.UnixMilli(ms)
		r.Topic = answer.Topic(topic)
		records = append(records, r)
	}
	return records, rows.Err()
}

// ceilMillis rounds up so that a bound with sub-millisecond precision
// never admits a record stamped just before it.
func ceilMillis(t time.Time) int64 {
	ms := t.UnixMilli()
	if time.UnixMilli(ms).Before(t) {
		ms++
	}
	return ms
}
