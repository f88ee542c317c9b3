package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/domain/performance"
)

const (
	DefaultMistakeLimit = 20
	ReportMistakeLimit  = 10

	mistakeTimeLayout = "2006-01-02 15:04"
)

// Extractor builds the mistakes list. Timestamps are rendered in Location,
// or the local zone when it is nil.
type Extractor struct {
	Location *time.Location
}

// Extract returns the answered, incorrect records, most recent first,
// capped at limit. A non-positive limit means DefaultMistakeLimit.
func (e Extractor) Extract(records []answer.Record, limit int) []performance.Mistake {
	if limit <= 0 {
		limit = DefaultMistakeLimit
	}
	loc := e.Location
	if loc == nil {
		loc = time.Local
	}

	mistakes := []performance.Mistake{}
	for _, r := range records {
		if !r.IsMistake() {
			continue
		}
		mistakes = append(mistakes, performance.Mistake{
			When:             r.Timestamp.In(loc).Format(mistakeTimeLayout),
			Topic:            r.Topic,
			Question:         r.Question,
			CorrectAnswer:    r.CorrectAnswer,
			ChosenAnswer:     r.ChosenAnswer,
			TimeSpentSeconds: r.TimeSpentSeconds,
			Advice:           r.Advice,
		})
	}

	// the layout is fixed-width, so string order is chronological order
	slices.SortStableFunc(mistakes, func(a, b performance.Mistake) int {
		return cmp.Compare(b.When, a.When)
	})

	if len(mistakes) > limit {
		mistakes = mistakes[:limit]
	}
	return mistakes
}
