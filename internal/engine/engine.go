// Package engine implements the session aggregator: it scores inbound
// messages, buffers the resulting records in memory, and flushes them to
// durable per-day storage.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ktagirov/nastroenie/internal/model"
	"github.com/ktagirov/nastroenie/internal/sentiment"
)

// flushEvery is the buffer length multiple that triggers a durable flush.
// A size-based backpressure valve, not a correctness boundary: a crash
// between triggers loses at most flushEvery-1 records.
const flushEvery = 10

// Config holds the engine's tunables.
type Config struct {
	ThresholdLow  float64
	ThresholdHigh float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ThresholdLow:  sentiment.DefaultThresholdLow,
		ThresholdHigh: sentiment.DefaultThresholdHigh,
	}
}

// Engine owns the in-memory session buffer and the store handles. Every
// mutation of the buffer or the file-backed stores is serialized behind one
// mutex; inference runs outside the lock.
type Engine struct {
	analyzer Analyzer
	store    Store
	logger   *slog.Logger
	now      func() time.Time
	cfg      Config

	mu       sync.Mutex
	buffer   []model.MessageRecord
	outliers int
}

// New creates an engine with the given dependencies.
func New(analyzer Analyzer, store Store, cfg Config, logger *slog.Logger) *Engine {
	return &Engine{
		analyzer: analyzer,
		store:    store,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessMessage scores one inbound message and folds the record into the
// session. Outliers are written to the per-month store immediately; the
// buffer flushes to the per-day store every flushEvery records.
func (e *Engine) ProcessMessage(ctx context.Context, msg model.IncomingMessage) {
	result := e.analyzer.Analyze(ctx, msg.Text)

	record := model.MessageRecord{
		MessageID:      msg.MessageID,
		ChatID:         msg.ChatID,
		UserID:         msg.UserID,
		Username:       msg.Username,
		Text:           msg.Text,
		Timestamp:      msg.Timestamp,
		SentimentScore: result.Score,
		SentimentLabel: result.Label,
		IsOutlier:      sentiment.IsOutlier(result.Score, e.cfg.ThresholdLow, e.cfg.ThresholdHigh),
	}

	e.logger.Info("message scored",
		"message_id", record.MessageID,
		"score", record.SentimentScore,
		"label", record.SentimentLabel,
		"category", result.Category())

	e.mu.Lock()
	defer e.mu.Unlock()

	e.buffer = append(e.buffer, record)

	if record.IsOutlier {
		e.outliers++
		kind := "positive"
		if record.SentimentScore <= e.cfg.ThresholdLow {
			kind = "negative"
		}
		e.logger.Info("outlier detected",
			"kind", kind,
			"score", record.SentimentScore,
			"text", truncate(record.Text, 50))

		if err := e.store.AppendOutlier(record.Month(), record); err != nil {
			e.logger.Error("failed to persist outlier", "error", err)
		}
	}

	if len(e.buffer)%flushEvery == 0 {
		e.flushLocked()
	}
}

// Flush writes any buffered records to the per-day store.
func (e *Engine) Flush() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flushLocked()
}

// Close flushes the unflushed tail of the session. Best-effort: a failed
// write is logged and the records are dropped.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.flushLocked()

	if e.outliers > 0 {
		e.logger.Info("session outliers", "count", e.outliers)
	}

	return nil
}

// flushLocked writes the whole buffer to the per-day store and clears it.
// Records are grouped by calendar day so a buffer spanning midnight lands in
// the right files. Callers must hold e.mu.
func (e *Engine) flushLocked() {
	if len(e.buffer) == 0 {
		return
	}

	byDay := make(map[string][]model.MessageRecord)
	for _, record := range e.buffer {
		byDay[record.Day()] = append(byDay[record.Day()], record)
	}

	for day, records := range byDay {
		if err := e.store.AppendRecords(day, records); err != nil {
			// Records for this cycle are lost; processing continues.
			e.logger.Error("failed to flush records",
				"date", day,
				"count", len(records),
				"error", err)
		}
	}

	e.logger.Info("flushed session buffer", "count", len(e.buffer))
	e.buffer = e.buffer[:0]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
