package api

import (
	"encoding/json"
	"net/http"

	"github.com/ecodeclub/ekit/slice"

	"github.com/algebra-helper/analytics/internal/analytics"
	"github.com/algebra-helper/analytics/internal/domain/performance"
	"github.com/algebra-helper/analytics/internal/service"
)

// ── Response types ──────────────────────────────────────────────────────────

type SummaryResponse struct {
	Total     int     `json:"total" example:"42"`
	Answered  int     `json:"answered" example:"40"`
	Correct   int     `json:"correct" example:"31"`
	Incorrect int     `json:"incorrect" example:"9"`
	DontKnow  int     `json:"dont_know" example:"2"`
	Accuracy  float64 `json:"accuracy" example:"0.775"`
}

type TopicResponse struct {
	Topic          string  `json:"topic" example:"Quadratics"`
	Correct        int     `json:"correct" example:"8"`
	Incorrect      int     `json:"incorrect" example:"2"`
	DontKnow       int     `json:"dont_know" example:"1"`
	TotalQuestions int     `json:"total_questions" example:"11"`
	Accuracy       float64 `json:"accuracy" example:"0.8"`
	AvgTimeSeconds float64 `json:"avg_time_seconds" example:"23.4"`
}

type BucketResponse struct {
	Bucket   string  `json:"bucket" example:"fast"`
	Label    string  `json:"label" example:"10-30 seconds"`
	Count    int     `json:"count" example:"12"`
	Correct  int     `json:"correct" example:"9"`
	Accuracy float64 `json:"accuracy" example:"0.75"`
}

type MistakeResponse struct {
	Date          string  `json:"date" example:"2024-12-16 09:30"`
	Topic         string  `json:"topic" example:"Quadratics"`
	Question      string  `json:"question" example:"Solve x^2 = 9"`
	CorrectAnswer string  `json:"correct_answer" example:"x = ±3"`
	ChosenAnswer  string  `json:"chosen_answer" example:"x = 3"`
	TimeSpent     float64 `json:"time_spent" example:"7"`
	Advice        string  `json:"advice" example:"Square roots have a negative solution too"`
}

type ReportResponse struct {
	ExportDate  string            `json:"export_date" example:"2024-12-17T10:00:00.000Z"`
	ExportStats json.RawMessage   `json:"export_stats,omitempty" swaggertype:"object"`
	Summary     SummaryResponse   `json:"summary"`
	Topics      []TopicResponse   `json:"topics"`
	Buckets     []BucketResponse  `json:"buckets"`
	Mistakes    []MistakeResponse `json:"mistakes"`
	Insights    []string          `json:"insights"`
}

func toSummaryResponse(s performance.Summary) SummaryResponse {
	return SummaryResponse{
		Total:     s.Total,
		Answered:  s.Answered,
		Correct:   s.Correct,
		Incorrect: s.Incorrect,
		DontKnow:  s.DontKnow,
		Accuracy:  s.Accuracy(),
	}
}

func toTopicResponses(stats performance.TopicStats) []TopicResponse {
	return slice.Map(stats, func(_ int, ts performance.TopicStat) TopicResponse {
		return TopicResponse{
			Topic:          ts.Topic.String(),
			Correct:        ts.Correct,
			Incorrect:      ts.Incorrect,
			DontKnow:       ts.DontKnow,
			TotalQuestions: ts.TotalQuestions(),
			Accuracy:       ts.Accuracy(),
			AvgTimeSeconds: ts.RoundedAvgTime(),
		}
	})
}

func toBucketResponses(stats performance.BucketStats) []BucketResponse {
	return slice.Map(stats, func(_ int, bs performance.BucketStat) BucketResponse {
		return BucketResponse{
			Bucket:   string(bs.Bucket),
			Label:    bs.Bucket.Label(),
			Count:    bs.Count,
			Correct:  bs.Correct,
			Accuracy: bs.Accuracy(),
		}
	})
}

func toMistakeResponses(mistakes []performance.Mistake) []MistakeResponse {
	return slice.Map(mistakes, func(_ int, m performance.Mistake) MistakeResponse {
		return MistakeResponse{
			Date:          m.When,
			Topic:         m.Topic.String(),
			Question:      m.Question,
			CorrectAnswer: m.CorrectAnswer,
			ChosenAnswer:  m.ChosenAnswer,
			TimeSpent:     m.TimeSpentSeconds,
			Advice:        m.Advice,
		}
	})
}

func toReportResponse(r *service.Report) ReportResponse {
	return ReportResponse{
		ExportDate:  r.ExportDate,
		ExportStats: r.ExportStats,
		Summary:     toSummaryResponse(r.Summary),
		Topics:      toTopicResponses(r.Topics),
		Buckets:     toBucketResponses(r.Buckets),
		Mistakes:    toMistakeResponses(r.Mistakes),
		Insights:    r.Insights,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getReport returns the full analytics report.
// @Summary      Full analytics report
// @Description  Summary, topic and time-bucket statistics, recent mistakes and insights for the selected records.
// @Tags         Analytics
// @Produce      json
// @Param        since  query     string  false  "Inclusive lower date bound"
// @Param        until  query     string  false  "Inclusive upper date bound"
// @Param        days   query     int     false  "Only the last N days (overrides since/until)"
// @Param        limit  query     int     false  "Maximum number of mistakes"
// @Success      200    {object}  ReportResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /report [get]
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	q, ok := parseQuery(w, r)
	if !ok {
		return
	}
	if q.MistakeLimit == 0 {
		q.MistakeLimit = analytics.ReportMistakeLimit
	}

	report, err := h.analysis.Analyze(q)
	if h.handleAnalysisError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toReportResponse(report))
}

// getTopics returns per-topic statistics, most practised first.
// @Summary      Topic statistics
// @Tags         Analytics
// @Produce      json
// @Param        since  query     string  false  "Inclusive lower date bound"
// @Param        until  query     string  false  "Inclusive upper date bound"
// @Param        days   query     int     false  "Only the last N days"
// @Success      200    {array}   TopicResponse
// @Failure      400    {object}  map[string]string
// @Router       /topics [get]
func (h *Handler) getTopics(w http.ResponseWriter, r *http.Request) {
	q, ok := parseQuery(w, r)
	if !ok {
		return
	}
	records, _, err := h.analysis.Subset(q)
	if h.handleAnalysisError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toTopicResponses(analytics.ByTopic(records)))
}

// getBuckets returns accuracy by response-time bucket.
// @Summary      Time-bucket statistics
// @Tags         Analytics
// @Produce      json
// @Param        since  query     string  false  "Inclusive lower date bound"
// @Param        until  query     string  false  "Inclusive upper date bound"
// @Param        days   query     int     false  "Only the last N days"
// @Success      200    {array}   BucketResponse
// @Failure      400    {object}  map[string]string
// @Router       /buckets [get]
func (h *Handler) getBuckets(w http.ResponseWriter, r *http.Request) {
	q, ok := parseQuery(w, r)
	if !ok {
		return
	}
	records, _, err := h.analysis.Subset(q)
	if h.handleAnalysisError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toBucketResponses(analytics.ByTimeBucket(records)))
}

// getMistakes returns the most recent incorrect answers.
// @Summary      Recent mistakes
// @Tags         Analytics
// @Produce      json
// @Param        since  query     string  false  "Inclusive lower date bound"
// @Param        until  query     string  false  "Inclusive upper date bound"
// @Param        days   query     int     false  "Only the last N days"
// @Param        limit  query     int     false  "Maximum number of mistakes (default 20)"
// @Success      200    {array}   MistakeResponse
// @Failure      400    {object}  map[string]string
// @Router       /mistakes [get]
func (h *Handler) getMistakes(w http.ResponseWriter, r *http.Request) {
	q, ok := parseQuery(w, r)
	if !ok {
		return
	}
	records, _, err := h.analysis.Subset(q)
	if h.handleAnalysisError(w, err) {
		return
	}
	mistakes := h.analysis.Extractor().Extract(records, q.MistakeLimit)
	respondJSON(w, http.StatusOK, toMistakeResponses(mistakes))
}

// getInsights returns the learning insights for the selected records.
// @Summary      Learning insights
// @Tags         Analytics
// @Produce      json
// @Param        since  query     string  false  "Inclusive lower date bound"
// @Param        until  query     string  false  "Inclusive upper date bound"
// @Param        days   query     int     false  "Only the last N days"
// @Success      200    {array}   string
// @Failure      400    {object}  map[string]string
// @Router       /insights [get]
func (h *Handler) getInsights(w http.ResponseWriter, r *http.Request) {
	q, ok := parseQuery(w, r)
	if !ok {
		return
	}
	records, _, err := h.analysis.Subset(q)
	if h.handleAnalysisError(w, err) {
		return
	}
	insights, err := h.analysis.Engine().Detect(records)
	if h.handleAnalysisError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, insights)
}
