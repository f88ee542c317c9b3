package analytics

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/domain/performance"
	"github.com/algebra-helper/analytics/internal/store"
)

// Rule thresholds. These are fixed heuristics, not tunables.
const (
	minBucketSamples   = 5
	speedAccuracyGap   = 0.2
	minTopicQuestions  = 5
	weakTopicAccuracy  = 0.6
	dontKnowRatioLimit = 0.3
	recentWindowDays   = 7
	minRecentRecords   = 10
	trendDelta         = 0.1
	minAdviceMentions  = 3
)

// ErrNoStore is returned by Detect when the Engine has no Store to take
// the recent-activity window from.
var ErrNoStore = errors.New("insight engine has no record store")

// Engine applies the insight rules. Store supplies the recent-activity
// window, which is always taken from the full export. The zero Engine is
// not usable: Detect fails with ErrNoStore. Use NewEngine.
type Engine struct {
	Store     store.RecordStore
	Extractor Extractor
}

func NewEngine(st store.RecordStore, ex Extractor) Engine {
	return Engine{Store: st, Extractor: ex}
}

// Detect runs every rule over records and returns the messages in rule
// order: speed, topic weakness, recent trend, advice keywords.
func (e Engine) Detect(records []answer.Record) ([]string, error) {
	if e.Store == nil {
		return nil, ErrNoStore
	}

	insights := []string{}
	insights = append(insights, speedInsights(ByTimeBucket(records))...)
	insights = append(insights, topicInsights(ByTopic(records))...)

	trend, err := e.trendInsights(records)
	if err != nil {
		return nil, err
	}
	insights = append(insights, trend...)

	insights = append(insights, adviceInsights(e.Extractor.Extract(records, DefaultMistakeLimit))...)
	return insights, nil
}

func speedInsights(buckets performance.BucketStats) []string {
	veryFast, ok1 := buckets.Get(performance.BucketVeryFast)
	normal, ok2 := buckets.Get(performance.BucketNormal)
	if !ok1 || !ok2 {
		return nil
	}
	if veryFast.Count < minBucketSamples || normal.Count < minBucketSamples {
		return nil
	}
	if veryFast.Accuracy() >= normal.Accuracy()-speedAccuracyGap {
		return nil
	}
	return []string{fmt.Sprintf(
		"💡 Student would benefit from taking more time on questions. "+
			"Questions answered in under 10 seconds show %s accuracy, "+
			"while those taking 30-60 seconds show %s accuracy.",
		percent(veryFast.Accuracy()), percent(normal.Accuracy()),
	)}
}

func topicInsights(topics performance.TopicStats) []string {
	var out []string
	for _, ts := range topics {
		if ts.TotalQuestions() < minTopicQuestions {
			continue
		}
		if ts.Accuracy() < weakTopicAccuracy {
			out = append(out, fmt.Sprintf(
				"📚 Student would benefit from additional practice in %s. "+
					"Current accuracy: %s (%d/%d questions)",
				ts.Topic, percent(ts.Accuracy()), ts.Correct, ts.Answered(),
			))
		}
		if ts.DontKnowRatio() > dontKnowRatioLimit {
			out = append(out, fmt.Sprintf(
				"🤔 Student might need more foundational work in %s. "+
					"%d out of %d questions were skipped with 'I don't know'.",
				ts.Topic, ts.DontKnow, ts.TotalQuestions(),
			))
		}
	}
	return out
}

func (e Engine) trendInsights(records []answer.Record) ([]string, error) {
	recent, err := e.Store.FilterLastNDays(recentWindowDays)
	if err != nil {
		return nil, err
	}
	if len(recent) < minRecentRecords {
		return nil, nil
	}

	recentSummary := Overall(recent)
	if recentSummary.Answered == 0 {
		return nil, nil
	}
	recentAcc := recentSummary.Accuracy()
	overallAcc := Overall(records).Accuracy()

	switch {
	case recentAcc > overallAcc+trendDelta:
		return []string{fmt.Sprintf(
			"🌟 Great progress! Recent performance (%s) shows improvement "+
				"compared to overall average (%s).",
			percent(recentAcc), percent(overallAcc),
		)}, nil
	case recentAcc < overallAcc-trendDelta:
		return []string{fmt.Sprintf(
			"📉 Recent performance (%s) has declined from overall average "+
				"(%s). Student might benefit from reviewing fundamentals or taking a break.",
			percent(recentAcc), percent(overallAcc),
		)}, nil
	}
	return nil, nil
}

func adviceInsights(mistakes []performance.Mistake) []string {
	var negativeRoot, inverse int
	for _, m := range mistakes {
		advice := strings.ToLower(m.Advice)
		if strings.Contains(advice, "negative") &&
			(strings.Contains(advice, "root") || strings.Contains(advice, "square")) {
			negativeRoot++
		}
		if strings.Contains(advice, "inverse") {
			inverse++
		}
	}

	var out []string
	if negativeRoot >= minAdviceMentions {
		out = append(out,
			"📐 Student would benefit from a reminder that square roots can have both positive and negative solutions. "+
				"This appears in multiple incorrect answers.")
	}
	if inverse >= minAdviceMentions {
		out = append(out,
			"🔄 Student needs more practice with inverse functions. "+
				"This concept appears in multiple incorrect answers.")
	}
	return out
}

// percent renders a ratio as a whole-number percentage, e.g. 0.833 -> "83%".
func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
