package performance

import (
	"math"

	"github.com/algebra-helper/analytics/internal/domain/answer"
)

// TopicStat tracks performance statistics for a single topic
type TopicStat struct {
	Topic            answer.Topic
	Correct          int
	Incorrect        int
	DontKnow         int
	TotalTimeSeconds float64
}

// Answered counts attempts that had a correctness verdict.
func (ts TopicStat) Answered() int {
	return ts.Correct + ts.Incorrect
}

// TotalQuestions includes "don't know" skips.
func (ts TopicStat) TotalQuestions() int {
	return ts.Correct + ts.Incorrect + ts.DontKnow
}

func (ts TopicStat) Accuracy() float64 {
	return ratio(ts.Correct, ts.Answered())
}

// AvgTimeSeconds averages over every question in the topic, skips included.
func (ts TopicStat) AvgTimeSeconds() float64 {
	n := ts.TotalQuestions()
	if n == 0 {
		return 0
	}
	return ts.TotalTimeSeconds / float64(n)
}

// RoundedAvgTime is AvgTimeSeconds to one decimal place, for display.
func (ts TopicStat) RoundedAvgTime() float64 {
	return math.Round(ts.AvgTimeSeconds()*10) / 10
}

// DontKnowRatio is the share of questions skipped with "I don't know".
func (ts TopicStat) DontKnowRatio() float64 {
	return ratio(ts.DontKnow, ts.TotalQuestions())
}

// TopicStats is ordered: most practised topic first.
type TopicStats []TopicStat

func (s TopicStats) Get(topic answer.Topic) (TopicStat, bool) {
	for _, ts := range s {
		if ts.Topic == topic {
			return ts, true
		}
	}
	return TopicStat{}, false
}

type Bucket string

const (
	BucketVeryFast Bucket = "very_fast"
	BucketFast     Bucket = "fast"
	BucketNormal   Bucket = "normal"
	BucketSlow     Bucket = "slow"
)

// Buckets lists every bucket in ascending time order.
var Buckets = []Bucket{BucketVeryFast, BucketFast, BucketNormal, BucketSlow}

// BucketFor maps a response time onto its half-open bucket.
func BucketFor(seconds float64) Bucket {
	switch {
	case seconds < 10:
		return BucketVeryFast
	case seconds < 30:
		return BucketFast
	case seconds < 60:
		return BucketNormal
	default:
		return BucketSlow
	}
}

// Label is the human-readable range of the bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketVeryFast:
		return "< 10 seconds"
	case BucketFast:
		return "10-30 seconds"
	case BucketNormal:
		return "30-60 seconds"
	case BucketSlow:
		return "> 60 seconds"
	}
	return string(b)
}

type BucketStat struct {
	Bucket  Bucket
	Count   int
	Correct int
}

func (bs BucketStat) Accuracy() float64 {
	return ratio(bs.Correct, bs.Count)
}

// BucketStats holds non-empty buckets in the order of Buckets.
type BucketStats []BucketStat

func (s BucketStats) Get(b Bucket) (BucketStat, bool) {
	for _, bs := range s {
		if bs.Bucket == b {
			return bs, true
		}
	}
	return BucketStat{}, false
}

// Summary aggregates a whole record subset.
type Summary struct {
	Total     int
	Answered  int
	Correct   int
	Incorrect int
	DontKnow  int
}

func (s Summary) Accuracy() float64 {
	return ratio(s.Correct, s.Answered)
}

// Mistake is an answered, incorrect attempt prepared for review.
type Mistake struct {
	When             string // "2006-01-02 15:04" in the report location
	Topic            answer.Topic
	Question         string
	CorrectAnswer    string
	ChosenAnswer     string
	TimeSpentSeconds float64
	Advice           string
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
