package performance_test

import (
	"testing"

	"github.com/algebra-helper/analytics/internal/domain/performance"
)

func TestTopicStat_Accuracy(t *testing.T) {
	ts := performance.TopicStat{Correct: 3, Incorrect: 1, DontKnow: 4}

	if got := ts.Accuracy(); got != 0.75 {
		t.Errorf("expected accuracy 0.75, got %v", got)
	}
	if got := ts.TotalQuestions(); got != 8 {
		t.Errorf("expected 8 questions, got %d", got)
	}
	if got := ts.DontKnowRatio(); got != 0.5 {
		t.Errorf("expected dont-know ratio 0.5, got %v", got)
	}
}

func TestTopicStat_OnlySkips(t *testing.T) {
	ts := performance.TopicStat{DontKnow: 2, TotalTimeSeconds: 9}

	if got := ts.Accuracy(); got != 0 {
		t.Errorf("expected accuracy 0 with nothing answered, got %v", got)
	}
	if got := ts.AvgTimeSeconds(); got != 4.5 {
		t.Errorf("expected average 4.5s, got %v", got)
	}
}

func TestTopicStat_Empty(t *testing.T) {
	var ts performance.TopicStat
	if ts.Accuracy() != 0 || ts.AvgTimeSeconds() != 0 || ts.DontKnowRatio() != 0 {
		t.Error("expected zero values for an empty topic")
	}
}

func TestTopicStat_RoundedAvgTime(t *testing.T) {
	ts := performance.TopicStat{Correct: 3, TotalTimeSeconds: 10}
	if got := ts.RoundedAvgTime(); got != 3.3 {
		t.Errorf("expected 3.3, got %v", got)
	}
}

func TestBucketFor_Boundaries(t *testing.T) {
	tests := []struct {
		seconds float64
		want    performance.Bucket
	}{
		{0, performance.BucketVeryFast},
		{9.99, performance.BucketVeryFast},
		{10, performance.BucketFast},
		{29.9, performance.BucketFast},
		{30, performance.BucketNormal},
		{59.9, performance.BucketNormal},
		{60, performance.BucketSlow},
		{3600, performance.BucketSlow},
	}
	for _, tt := range tests {
		if got := performance.BucketFor(tt.seconds); got != tt.want {
			t.Errorf("BucketFor(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestBucketStats_Get(t *testing.T) {
	stats := performance.BucketStats{{Bucket: performance.BucketFast, Count: 2, Correct: 1}}

	got, ok := stats.Get(performance.BucketFast)
	if !ok {
		t.Fatal("expected fast bucket to be present")
	}
	if got.Accuracy() != 0.5 {
		t.Errorf("expected accuracy 0.5, got %v", got.Accuracy())
	}
	if _, ok := stats.Get(performance.BucketSlow); ok {
		t.Error("expected slow bucket to be absent")
	}
}
