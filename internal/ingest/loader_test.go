package ingest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algebra-helper/analytics/internal/domain/answer"
	"github.com/algebra-helper/analytics/internal/ingest"
)

const export = `{
  "exportDate": "2024-12-17T10:00:00.000Z",
  "stats": {"totalQuestions": 2},
  "questions": [
    {
      "datetime": 1734400000000,
      "topic": "Quadratics",
      "question": "Solve x^2 = 9",
      "correctAnswer": "x = ±3",
      "chosenAnswer": "x = 3",
      "isCorrect": false,
      "isDontKnow": false,
      "timeSpent": 7,
      "advice": "Square roots have a negative solution too"
    },
    {"datetime": 1734400060000}
  ]
}`

func TestParse(t *testing.T) {
	snap, err := ingest.Parse([]byte(export))
	require.NoError(t, err)

	assert.Equal(t, "2024-12-17T10:00:00.000Z", snap.ExportDate)
	assert.JSONEq(t, `{"totalQuestions": 2}`, string(snap.Stats))
	require.Len(t, snap.Records, 2)

	first := snap.Records[0]
	assert.True(t, first.Timestamp.Equal(time.UnixMilli(1734400000000)))
	assert.Equal(t, answer.Topic("Quadratics"), first.Topic)
	assert.Equal(t, "x = 3", first.ChosenAnswer)
	assert.Equal(t, 7.0, first.TimeSpentSeconds)
	assert.True(t, first.IsMistake())

	second := snap.Records[1]
	assert.Equal(t, answer.UnknownTopic, second.Topic)
	assert.Equal(t, "unknown", second.ChosenAnswer)
	assert.False(t, second.IsCorrect)
	assert.False(t, second.IsDontKnow)
	assert.Zero(t, second.TimeSpentSeconds)
	assert.Empty(t, second.Advice)
}

func TestParse_MissingExportDate(t *testing.T) {
	snap, err := ingest.Parse([]byte(`{"questions": []}`))
	require.NoError(t, err)
	assert.Equal(t, "unknown", snap.ExportDate)
	assert.Empty(t, snap.Records)
}

func TestParse_FormatErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "malformed json", input: `{"questions": [`},
		{name: "missing questions", input: `{"exportDate": "x"}`},
		{name: "null questions", input: `{"questions": null}`},
		{name: "questions not an array", input: `{"questions": {"a": 1}}`},
		{name: "record not an object", input: `{"questions": [42]}`},
		{name: "record without datetime", input: `{"questions": [{"topic": "Lines"}]}`},
		{name: "top level array", input: `[]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingest.Parse([]byte(tc.input))
			require.Error(t, err)

			var ferr *ingest.FormatError
			assert.True(t, errors.As(err, &ferr), "expected FormatError, got %T", err)
		})
	}
}

func TestLoad_Reader(t *testing.T) {
	snap, err := ingest.Load(strings.NewReader(export))
	require.NoError(t, err)
	assert.Len(t, snap.Records, 2)
}

func TestLoad_ReadFailure(t *testing.T) {
	readErr := errors.New("connection reset")
	_, err := ingest.Load(iotest.ErrReader(readErr))
	require.Error(t, err)

	var aerr *ingest.FileAccessError
	require.True(t, errors.As(err, &aerr), "expected FileAccessError, got %T", err)
	assert.Equal(t, "<reader>", aerr.Path)
	assert.ErrorIs(t, err, readErr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))

	snap, err := ingest.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := ingest.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var aerr *ingest.FileAccessError
	require.True(t, errors.As(err, &aerr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
