// Package analytics turns answer records into grouped statistics, a ranked
// mistake list and rule-based learning insights. Every function here is a
// pure function of its input records.
package analytics

import (
	"cmp"
	"slices"

	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/domain/performance"
)

// ByTopic groups records by topic, most practised topic first. Topics with
// the same number of questions keep the order in which they were first seen.
func ByTopic(records []answer.Record) performance.TopicStats {
	index := make(map[answer.Topic]int)
	stats := performance.TopicStats{}

	for _, r := range records {
		i, ok := index[r.Topic]
		if !ok {
			i = len(stats)
			index[r.Topic] = i
			stats = append(stats, performance.TopicStat{Topic: r.Topic})
		}

		ts := &stats[i]
		ts.TotalTimeSeconds += r.TimeSpentSeconds
		switch r.Outcome() {
		case answer.OutcomeDontKnow:
			ts.DontKnow++
		case answer.OutcomeCorrect:
			ts.Correct++
		default:
			ts.Incorrect++
		}
	}

	slices.SortStableFunc(stats, func(a, b performance.TopicStat) int {
		return cmp.Compare(b.TotalQuestions(), a.TotalQuestions())
	})
	return stats
}

// ByTimeBucket groups answered records by response time. "Don't know"
// skips are left out entirely, and empty buckets are omitted.
func ByTimeBucket(records []answer.Record) performance.BucketStats {
	counts := make(map[performance.Bucket]*performance.BucketStat, len(performance.Buckets))
	for _, r := range records {
		if !r.Answered() {
			continue
		}
		b := performance.BucketFor(r.TimeSpentSeconds)
		bs, ok := counts[b]
		if !ok {
			bs = &performance.BucketStat{Bucket: b}
			counts[b] = bs
		}
		bs.Count++
		if r.IsCorrect {
			bs.Correct++
		}
	}

	stats := performance.BucketStats{}
	for _, b := range performance.Buckets {
		if bs, ok := counts[b]; ok {
			stats = append(stats, *bs)
		}
	}
	return stats
}

// Overall summarises a whole subset.
func Overall(records []answer.Record) performance.Summary {
	s := performance.Summary{Total: len(records)}
	for _, r := range records {
		switch r.Outcome() {
		case answer.OutcomeDontKnow:
			s.DontKnow++
			continue
		case answer.OutcomeCorrect:
			s.Correct++
		default:
			s.Incorrect++
		}
		s.Answered++
	}
	return s
}
