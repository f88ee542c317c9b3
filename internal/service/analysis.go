// internal/service/analysis.go
package service

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/algebra-helper/analytics/internal/analytics"
	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/domain/performance"
	"github.com/algebra-helper/analytics/internal/ingest"
	"github.com/algebra-helper/analytics/internal/store"
)

// Query selects the records a report covers. DaysBack wins over the
// explicit bounds when both are given; the zero Query covers everything.
type Query struct {
	DaysBack     int
	Since        string // permissive date, inclusive
	Until        string // permissive date, inclusive
	MistakeLimit int    // 0 = analytics.DefaultMistakeLimit
}

// Report is everything the renderers need, with no formatting applied.
type Report struct {
	ExportDate   string
	ExportStats  json.RawMessage
	DaysBack     int
	Range        store.Range
	MistakeLimit int
	Summary      performance.Summary
	Topics       performance.TopicStats
	Buckets      performance.BucketStats
	Mistakes     []performance.Mistake
	Insights     []string
}

// AnalysisService runs the analytics pipeline over one loaded export.
// It holds no mutable state, so a single instance can serve concurrent
// callers.
type AnalysisService struct {
	exportDate  string
	exportStats json.RawMessage
	store       store.RecordStore
	location    *time.Location
	logger      *slog.Logger
}

// NewAnalysisService creates an AnalysisService over st. loc is used for
// date bounds without a zone and for mistake timestamps.
func NewAnalysisService(snap *ingest.Snapshot, st store.RecordStore, loc *time.Location, logger *slog.Logger) *AnalysisService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalysisService{
		exportDate:  snap.ExportDate,
		exportStats: snap.Stats,
		store:       st,
		location:    loc,
		logger:      logger,
	}
}

func (s *AnalysisService) Extractor() analytics.Extractor {
	return analytics.Extractor{Location: s.location}
}

func (s *AnalysisService) Engine() analytics.Engine {
	return analytics.NewEngine(s.store, s.Extractor())
}

// Subset returns the records selected by q. A bad date bound yields a
// *store.ParseError.
func (s *AnalysisService) Subset(q Query) ([]answer.Record, store.Range, error) {
	if q.DaysBack > 0 {
		records, err := s.store.FilterLastNDays(q.DaysBack)
		return records, store.Range{}, err
	}

	r, err := store.ParseRange(q.Since, q.Until, s.location)
	if err != nil {
		return nil, store.Range{}, err
	}
	if r.Since == nil && r.Until == nil {
		records, err := s.store.All()
		return records, r, err
	}
	records, err := s.store.FilterByRange(r.Since, r.Until)
	return records, r, err
}

// Analyze builds the full report for q.
func (s *AnalysisService) Analyze(q Query) (*Report, error) {
	records, r, err := s.Subset(q)
	if err != nil {
		return nil, err
	}

	insights, err := s.Engine().Detect(records)
	if err != nil {
		s.logger.Error("insight detection failed", "error", err)
		return nil, err
	}

	limit := q.MistakeLimit
	if limit <= 0 {
		limit = analytics.DefaultMistakeLimit
	}

	report := &Report{
		ExportDate:   s.exportDate,
		ExportStats:  s.exportStats,
		DaysBack:     q.DaysBack,
		Range:        r,
		MistakeLimit: limit,
		Summary:      analytics.Overall(records),
		Topics:       analytics.ByTopic(records),
		Buckets:      analytics.ByTimeBucket(records),
		Mistakes:     s.Extractor().Extract(records, limit),
		Insights:     insights,
	}

	s.logger.Debug("analysis complete",
		"records", len(records),
		"topics", len(report.Topics),
		"mistakes", len(report.Mistakes),
		"insights", len(report.Insights),
	)
	return report, nil
}
