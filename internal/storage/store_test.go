package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktagirov/nastroenie/internal/model"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()

	store, err := NewJSONStore(t.TempDir(), slog.Default())
	require.NoError(t, err)
	return store
}

func testRecord(id int, score float64) model.MessageRecord {
	label := model.LabelNeutral
	switch {
	case score <= 3.5:
		label = model.LabelNegative
	case score >= 6.5:
		label = model.LabelPositive
	}

	return model.MessageRecord{
		MessageID:      id,
		ChatID:         -100123,
		UserID:         42,
		Username:       "vasya",
		Text:           "тестовое сообщение",
		Timestamp:      time.Date(2026, 8, 30, 12, 0, id, 0, time.UTC),
		SentimentScore: score,
		SentimentLabel: label,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	store := newTestStore(t)

	records := []model.MessageRecord{
		testRecord(1, 2.0),
		testRecord(2, 5.0),
		testRecord(3, 9.0),
	}

	require.NoError(t, store.AppendRecords("2026-08-30", records))

	got, err := store.ReadDay("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestAppendRecordsMergesWithExisting(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendRecords("2026-08-30", []model.MessageRecord{testRecord(1, 4.0)}))
	require.NoError(t, store.AppendRecords("2026-08-30", []model.MessageRecord{testRecord(2, 6.0)}))

	got, err := store.ReadDay("2026-08-30")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].MessageID)
	assert.Equal(t, 2, got[1].MessageID)
}

func TestReadDayMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.ReadDay("1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorruptFileTreatedAsEmptyThenOverwritten(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(store.Dir(), "sentiment_data_2026-08-30.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := store.ReadDay("2026-08-30")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.AppendRecords("2026-08-30", []model.MessageRecord{testRecord(1, 5.0)}))

	got, err = store.ReadDay("2026-08-30")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].MessageID)
}

func TestAppendOutlier(t *testing.T) {
	store := newTestStore(t)

	first := testRecord(1, 1.5)
	first.IsOutlier = true
	second := testRecord(2, 9.5)
	second.IsOutlier = true

	require.NoError(t, store.AppendOutlier("2026-08", first))
	require.NoError(t, store.AppendOutlier("2026-08", second))

	got, err := store.ReadOutliers("2026-08")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []model.MessageRecord{first, second}, got)

	assert.FileExists(t, filepath.Join(store.Dir(), "outliers_2026-08.json"))
}

func TestAppendReportSameDayRerunsAccumulate(t *testing.T) {
	store := newTestStore(t)

	report := model.DailyReport{
		Date:             "2026-08-30",
		TotalMessages:    3,
		AverageSentiment: 5.33,
		GeneratedAt:      time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC),
	}

	require.NoError(t, store.AppendReport("2026-08-30", report))
	require.NoError(t, store.AppendReport("2026-08-30", report))

	reports, err := readArray[model.DailyReport](
		filepath.Join(store.Dir(), "daily_report_2026-08-30.json"), slog.Default())
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestNewJSONStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	_, err := NewJSONStore(dir, slog.Default())
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestNewJSONStoreRequiresDirectory(t *testing.T) {
	_, err := NewJSONStore("", slog.Default())
	require.Error(t, err)
}
