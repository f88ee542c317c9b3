package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/algebra-helper/analytics/internal/domain/performance"
	"github.com/algebra-helper/analytics/internal/service"
)

const (
	width         = 80
	questionWidth = 80
	rangeLayout   = "2006-01-02 15:04"
)

// WriteText renders r as the plain-text student analytics report.
func WriteText(w io.Writer, r *service.Report) error {
	p := &printer{w: w}

	p.rule("=")
	p.line("ALGEBRA HELPER - STUDENT ANALYTICS REPORT")
	p.rule("=")
	p.blank()
	p.line("Export date: %s", r.ExportDate)
	p.line("Analysis period: %s", period(r))
	p.line("Total questions analyzed: %d", r.Summary.Total)
	p.blank()

	p.section("OVERALL PERFORMANCE")
	if r.Summary.Answered > 0 {
		p.line("Questions answered: %d", r.Summary.Answered)
		p.line("Correct: %d (%.1f%%)", r.Summary.Correct, r.Summary.Accuracy()*100)
		p.line("Incorrect: %d", r.Summary.Incorrect)
	}
	if r.Summary.DontKnow > 0 {
		p.line("Skipped (I don't know): %d", r.Summary.DontKnow)
	}
	p.blank()

	p.section("PERFORMANCE BY TOPIC")
	for _, ts := range r.Topics {
		p.blank()
		p.line("%s:", ts.Topic)
		p.line("  Questions: %d", ts.TotalQuestions())
		p.line("  Accuracy: %.1f%% (%d/%d)", ts.Accuracy()*100, ts.Correct, ts.Answered())
		p.line("  Average time: %s seconds", seconds(ts.RoundedAvgTime()))
		if ts.DontKnow > 0 {
			p.line("  Skipped: %d", ts.DontKnow)
		}
	}
	p.blank()

	p.section("TIME SPENT vs ACCURACY")
	for _, bs := range r.Buckets {
		p.line("%s: %.1f%% accuracy (%d/%d questions)", bs.Bucket.Label(), bs.Accuracy()*100, bs.Correct, bs.Count)
	}
	p.blank()

	p.section(fmt.Sprintf("RECENT MISTAKES (up to %d)", r.MistakeLimit))
	for i, m := range r.Mistakes {
		writeMistake(p, i+1, m)
	}
	p.blank()

	p.section("LEARNING INSIGHTS & RECOMMENDATIONS")
	if len(r.Insights) == 0 {
		p.blank()
		p.line("No specific patterns detected. Keep up the good work!")
	}
	for _, insight := range r.Insights {
		p.blank()
		p.line("%s", insight)
	}
	p.blank()
	p.rule("=")

	return p.err
}

func writeMistake(p *printer, n int, m performance.Mistake) {
	p.blank()
	p.line("%d. %s - %s", n, m.When, m.Topic)
	p.line("   Question: %s...", truncate(m.Question, questionWidth))
	p.line("   Correct answer: %s", m.CorrectAnswer)
	p.line("   Student answered: %s", m.ChosenAnswer)
	p.line("   Time spent: %s seconds", seconds(m.TimeSpentSeconds))
}

func period(r *service.Report) string {
	switch {
	case r.DaysBack > 0:
		return fmt.Sprintf("Last %d days", r.DaysBack)
	case r.Range.Since != nil && r.Range.Until != nil:
		return fmt.Sprintf("%s to %s", r.Range.Since.Format(rangeLayout), r.Range.Until.Format(rangeLayout))
	case r.Range.Since != nil:
		return "Since " + r.Range.Since.Format(rangeLayout)
	case r.Range.Until != nil:
		return "Until " + r.Range.Until.Format(rangeLayout)
	}
	return "All time"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) blank() {
	p.line("")
}

func (p *printer) rule(ch string) {
	p.line("%s", strings.Repeat(ch, width))
}

func (p *printer) section(title string) {
	p.rule("-")
	p.line("%s", title)
	p.rule("-")
}
