package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algebra-helper/analytics/internal/api"
	"github.com/algebra-helper/analytics/internal/clock"
	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/ingest"
	"github.com/algebra-helper/analytics/internal/service"
	"github.com/algebra-helper/analytics/internal/store"
)

var now = time.Date(2024, 12, 17, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T) http.Handler {
	t.Helper()

	var records []answer.Record
	for i := 0; i < 15; i++ {
		records = append(records, answer.Record{
			Timestamp:        now.Add(-time.Duration(i) * 24 * time.Hour),
			Topic:            "Functions",
			Question:         "Find the inverse",
			ChosenAnswer:     "unknown",
			TimeSpentSeconds: 20,
			Advice:           "Swap x and y for the inverse",
		})
	}

	snap := &ingest.Snapshot{
		ExportDate: "2024-12-17",
		Stats:      []byte(`{"totalQuestions": 15}`),
		Records:    records,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewAnalysisService(snap, store.NewMemory(clock.Fixed(now), records), time.UTC, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(svc, logger))
	return api.Logging(logger)(mux)
}

func get(t *testing.T, h http.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestGetReport(t *testing.T) {
	h := newServer(t)

	var resp api.ReportResponse
	rec := get(t, h, "/report", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.Equal(t, "2024-12-17", resp.ExportDate)
	assert.JSONEq(t, `{"totalQuestions": 15}`, string(resp.ExportStats))
	assert.Equal(t, 15, resp.Summary.Total)
	require.Len(t, resp.Topics, 1)
	assert.Equal(t, 15, resp.Topics[0].TotalQuestions)
	require.Len(t, resp.Buckets, 1)
	assert.Equal(t, "fast", resp.Buckets[0].Bucket)
	assert.Equal(t, "10-30 seconds", resp.Buckets[0].Label)
	assert.Len(t, resp.Mistakes, 10)
	assert.Equal(t, "2024-12-17 12:00", resp.Mistakes[0].Date)
	assert.NotEmpty(t, resp.Insights)
}

func TestGetReport_Days(t *testing.T) {
	var resp api.ReportResponse
	rec := get(t, newServer(t), "/report?days=3&limit=2", &resp)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 4, resp.Summary.Total)
	assert.Len(t, resp.Mistakes, 2)
}

func TestGetTopics(t *testing.T) {
	var resp []api.TopicResponse
	rec := get(t, newServer(t), "/topics?since=2024-12-10", &resp)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, resp, 1)
	assert.Equal(t, "Functions", resp[0].Topic)
	assert.Equal(t, 8, resp[0].TotalQuestions)
	assert.Zero(t, resp[0].Accuracy)
	assert.Equal(t, 20.0, resp[0].AvgTimeSeconds)
}

func TestGetBuckets_Empty(t *testing.T) {
	var resp []api.BucketResponse
	rec := get(t, newServer(t), "/buckets?until=2000-01-01", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetMistakes_DefaultLimit(t *testing.T) {
	var resp []api.MistakeResponse
	rec := get(t, newServer(t), "/mistakes", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp, 15)
}

func TestGetInsights(t *testing.T) {
	var resp []string
	rec := get(t, newServer(t), "/insights", &resp)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, resp, 2)
	assert.Contains(t, resp[0], "additional practice in Functions")
	assert.Contains(t, resp[1], "inverse functions")
}

func TestBadRequests(t *testing.T) {
	h := newServer(t)

	testCases := []struct {
		name   string
		target string
	}{
		{name: "bad since", target: "/report?since=bogus"},
		{name: "bad until", target: "/topics?until=2024-99-99"},
		{name: "bad days", target: "/buckets?days=abc"},
		{name: "negative days", target: "/insights?days=-1"},
		{name: "bad limit", target: "/mistakes?limit=many"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, h, tc.target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
