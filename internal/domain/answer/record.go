package answer

import (
	"strings"
	"time"
)

const (
	UnknownTopic  Topic = "Unknown"
	UnknownChoice       = "unknown"
)

// Topic is the subject label a question belongs to.
type Topic string

// NewTopic normalises a raw label. Blank labels fall back to UnknownTopic.
func NewTopic(raw string) Topic {
	t := strings.TrimSpace(raw)
	if t == "" {
		return UnknownTopic
	}
	return Topic(t)
}

func (t Topic) String() string {
	return string(t)
}

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeDontKnow  Outcome = "dont_know"
)

// Record is one logged question attempt. Records are passed by value and
// never modified after ingestion.
type Record struct {
	Timestamp        time.Time
	Topic            Topic
	Question         string
	CorrectAnswer    string
	ChosenAnswer     string
	IsCorrect        bool
	IsDontKnow       bool
	TimeSpentSeconds float64
	Advice           string
}

// Outcome classifies the record for accuracy accounting. A "don't know"
// skip wins over the correctness flag.
func (r Record) Outcome() Outcome {
	switch {
	case r.IsDontKnow:
		return OutcomeDontKnow
	case r.IsCorrect:
		return OutcomeCorrect
	default:
		return OutcomeIncorrect
	}
}

// Answered reports whether the record counts towards accuracy.
func (r Record) Answered() bool {
	return !r.IsDontKnow
}

// IsMistake is true for answered, incorrect records.
func (r Record) IsMistake() bool {
	return !r.IsCorrect && !r.IsDontKnow
}

// Draft holds the optional fields of a record as they arrive from an
// export. Nil means the field was absent.
type Draft struct {
	Timestamp     time.Time
	Topic         *string
	Question      *string
	CorrectAnswer *string
	ChosenAnswer  *string
	IsCorrect     *bool
	IsDontKnow    *bool
	TimeSpent     *float64
	Advice        *string
}

// Resolve applies the documented defaults and returns the final record.
func (d Draft) Resolve() Record {
	r := Record{
		Timestamp:     d.Timestamp,
		Topic:         UnknownTopic,
		Question:      deref(d.Question, ""),
		CorrectAnswer: deref(d.CorrectAnswer, ""),
		ChosenAnswer:  deref(d.ChosenAnswer, UnknownChoice),
		IsCorrect:     deref(d.IsCorrect, false),
		IsDontKnow:    deref(d.IsDontKnow, false),
		Advice:        deref(d.Advice, ""),
	}
	if d.Topic != nil {
		r.Topic = NewTopic(*d.Topic)
	}
	if d.TimeSpent != nil && *d.TimeSpent > 0 {
		r.TimeSpentSeconds = *d.TimeSpent
	}
	return r
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
