package service_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algebra-helper/analytics/internal/clock"
	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/ingest"
	"github.com/algebra-helper/analytics/internal/service"
	"github.com/algebra-helper/analytics/internal/store"
)

var now = time.Date(2024, 12, 17, 12, 0, 0, 0, time.UTC)

func record(topic string, correct bool, daysAgo int) answer.Record {
	return answer.Record{
		Timestamp:        now.Add(-time.Duration(daysAgo) * 24 * time.Hour),
		Topic:            answer.Topic(topic),
		IsCorrect:        correct,
		ChosenAnswer:     "unknown",
		TimeSpentSeconds: 20,
	}
}

func newService(t *testing.T, records []answer.Record) *service.AnalysisService {
	t.Helper()
	snap := &ingest.Snapshot{ExportDate: "2024-12-17", Records: records}
	st := store.NewMemory(clock.Fixed(now), snap.Records)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewAnalysisService(snap, st, time.UTC, logger)
}

func fixture() []answer.Record {
	var records []answer.Record
	for i := 0; i < 6; i++ {
		records = append(records, record("Old", false, 40))
	}
	for i := 0; i < 4; i++ {
		records = append(records, record("Recent", true, 2))
	}
	return records
}

func TestAnalyze_AllTime(t *testing.T) {
	svc := newService(t, fixture())

	report, err := svc.Analyze(service.Query{})
	require.NoError(t, err)

	assert.Equal(t, "2024-12-17", report.ExportDate)
	assert.Equal(t, 10, report.Summary.Total)
	assert.Equal(t, 4, report.Summary.Correct)
	require.Len(t, report.Topics, 2)
	assert.Equal(t, answer.Topic("Old"), report.Topics[0].Topic)
	assert.Len(t, report.Mistakes, 6)
	require.Len(t, report.Insights, 1)
	assert.Contains(t, report.Insights[0], "additional practice in Old")
}

func TestAnalyze_DaysBack(t *testing.T) {
	svc := newService(t, fixture())

	report, err := svc.Analyze(service.Query{DaysBack: 7, Since: "garbage"})
	require.NoError(t, err)

	assert.Equal(t, 7, report.DaysBack)
	assert.Equal(t, 4, report.Summary.Total)
	assert.Empty(t, report.Mistakes)
	assert.Empty(t, report.Insights)
}

func TestAnalyze_DateRange(t *testing.T) {
	svc := newService(t, fixture())

	report, err := svc.Analyze(service.Query{Since: "2024-12-01", Until: "2024-12-31"})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Summary.Total)
	require.NotNil(t, report.Range.Since)
	require.NotNil(t, report.Range.Until)

	report, err = svc.Analyze(service.Query{Until: "2024-12-01"})
	require.NoError(t, err)
	assert.Equal(t, 6, report.Summary.Total)
}

func TestAnalyze_MistakeLimit(t *testing.T) {
	svc := newService(t, fixture())

	report, err := svc.Analyze(service.Query{MistakeLimit: 2})
	require.NoError(t, err)
	assert.Len(t, report.Mistakes, 2)
}

func TestAnalyze_BadBound(t *testing.T) {
	svc := newService(t, fixture())

	_, err := svc.Analyze(service.Query{Since: "bogus"})
	var perr *store.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestAnalyze_SQLiteBackendMatchesMemory(t *testing.T) {
	records := fixture()
	snap := &ingest.Snapshot{Records: records}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sq, err := store.NewSQLite(clock.Fixed(now), records)
	require.NoError(t, err)
	defer sq.Close()

	fromSQLite, err := service.NewAnalysisService(snap, sq, time.UTC, logger).Analyze(service.Query{DaysBack: 30})
	require.NoError(t, err)
	fromMemory, err := newService(t, records).Analyze(service.Query{DaysBack: 30})
	require.NoError(t, err)

	assert.Equal(t, fromMemory.Summary, fromSQLite.Summary)
	assert.Equal(t, fromMemory.Topics, fromSQLite.Topics)
	assert.Equal(t, fromMemory.Buckets, fromSQLite.Buckets)
	assert.Equal(t, fromMemory.Insights, fromSQLite.Insights)
}
