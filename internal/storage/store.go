// Package storage persists scored messages and reports as JSON array files
// under a single log directory.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ktagirov/nastroenie/internal/model"
)

// JSONStore owns the log directory and maintains one JSON array file per
// calendar day (records), per calendar month (outliers), and per day
// (reports). Files are maintained read-merge-write: the whole array is
// rewritten on each append. Callers serialize access; the store itself holds
// no locks.
type JSONStore struct {
	logger *slog.Logger
	dir    string
}

// NewJSONStore creates the log directory if needed and returns a store over it.
func NewJSONStore(dir string, logger *slog.Logger) (*JSONStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("log directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	return &JSONStore{dir: dir, logger: logger}, nil
}

// Dir returns the log directory the store writes to.
func (s *JSONStore) Dir() string {
	return s.dir
}

// AppendRecords appends records to the per-day file for date (YYYY-MM-DD).
func (s *JSONStore) AppendRecords(date string, records []model.MessageRecord) error {
	return appendToArray(s.dayPath(date), s.logger, records...)
}

// AppendOutlier immediately appends one record to the per-month outlier file
// for month (YYYY-MM).
func (s *JSONStore) AppendOutlier(month string, record model.MessageRecord) error {
	return appendToArray(s.outlierPath(month), s.logger, record)
}

// AppendReport appends one report to the per-day report file for date.
// Same-day reruns append to the same file.
func (s *JSONStore) AppendReport(date string, report model.DailyReport) error {
	return appendToArray(s.reportPath(date), s.logger, report)
}

// ReadDay returns all records stored for date, in append order. A missing or
// corrupt file reads as empty.
func (s *JSONStore) ReadDay(date string) ([]model.MessageRecord, error) {
	return readArray[model.MessageRecord](s.dayPath(date), s.logger)
}

// ReadOutliers returns all outlier records stored for month (YYYY-MM).
func (s *JSONStore) ReadOutliers(month string) ([]model.MessageRecord, error) {
	return readArray[model.MessageRecord](s.outlierPath(month), s.logger)
}

func (s *JSONStore) dayPath(date string) string {
	return filepath.Join(s.dir, fmt.Sprintf("sentiment_data_%s.json", date))
}

func (s *JSONStore) outlierPath(month string) string {
	return filepath.Join(s.dir, fmt.Sprintf("outliers_%s.json", month))
}

func (s *JSONStore) reportPath(date string) string {
	return filepath.Join(s.dir, fmt.Sprintf("daily_report_%s.json", date))
}

// readArray loads a JSON array file. Corrupt content is logged and treated as
// an empty store; the next write overwrites it.
func readArray[T any](path string, logger *slog.Logger) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("store file corrupted, treating as empty",
			"path", path,
			"error", err)
		return nil, nil
	}

	return items, nil
}

// appendToArray performs the read-merge-write cycle for one array file.
func appendToArray[T any](path string, logger *slog.Logger, items ...T) error {
	if len(items) == 0 {
		return nil
	}

	existing, err := readArray[T](path, logger)
	if err != nil {
		return err
	}

	existing = append(existing, items...)

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
