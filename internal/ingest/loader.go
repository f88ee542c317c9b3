package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/algebra-helper/analytics/internal/domain/answer"
)

// FileAccessError reports an export that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// FormatError reports an export that is not a valid document.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid export: %s: %v", e.Reason, e.Err)
	}
	return "invalid export: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// Snapshot is one parsed export. Stats is the exporter's own summary
// object, passed through untouched; nil when the export has none.
type Snapshot struct {
	ExportDate string
	Stats      json.RawMessage
	Records    []answer.Record
}

type exportJSON struct {
	ExportDate *string          `json:"exportDate"`
	Stats      json.RawMessage  `json:"stats"`
	Questions  *json.RawMessage `json:"questions"`
}

type questionJSON struct {
	Datetime      *float64 `json:"datetime"`
	Topic         *string  `json:"topic"`
	Question      *string  `json:"question"`
	CorrectAnswer *string  `json:"correctAnswer"`
	ChosenAnswer  *string  `json:"chosenAnswer"`
	IsCorrect     *bool    `json:"isCorrect"`
	IsDontKnow    *bool    `json:"isDontKnow"`
	TimeSpent     *float64 `json:"timeSpent"`
	Advice        *string  `json:"advice"`
}

// LoadFile reads and parses the export at path.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return Parse(data)
}

// readerPath names a FileAccessError raised by Load, which has no path.
const readerPath = "<reader>"

// Load parses an export from r.
func Load(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileAccessError{Path: readerPath, Err: err}
	}
	return Parse(data)
}

// Parse decodes an export document. Records missing optional fields get
// their defaults; a missing or non-array "questions" field is fatal.
func Parse(data []byte) (*Snapshot, error) {
	var doc exportJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Reason: "malformed JSON", Err: err}
	}
	if doc.Questions == nil {
		return nil, &FormatError{Reason: `missing "questions" field`}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(*doc.Questions, &items); err != nil {
		return nil, &FormatError{Reason: `"questions" is not an array`, Err: err}
	}

	snap := &Snapshot{
		ExportDate: "unknown",
		Stats:      doc.Stats,
		Records:    make([]answer.Record, 0, len(items)),
	}
	if doc.ExportDate != nil {
		snap.ExportDate = *doc.ExportDate
	}

	for i, raw := range items {
		rec, err := parseQuestion(raw)
		if err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("question %d", i), Err: err}
		}
		snap.Records = append(snap.Records, rec)
	}
	return snap, nil
}

func parseQuestion(raw json.RawMessage) (answer.Record, error) {
	var q questionJSON
	if err := json.Unmarshal(raw, &q); err != nil {
		return answer.Record{}, errors.Wrap(err, "not an object")
	}
	if q.Datetime == nil {
		return answer.Record{}, errors.New(`missing "datetime"`)
	}
	return answer.Draft{
		Timestamp:     time.UnixMilli(int64(*q.Datetime)),
		Topic:         q.Topic,
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		ChosenAnswer:  q.ChosenAnswer,
		IsCorrect:     q.IsCorrect,
		IsDontKnow:    q.IsDontKnow,
		TimeSpent:     q.TimeSpent,
		Advice:        q.Advice,
	}.Resolve(), nil
}
