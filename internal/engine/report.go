package engine

import (
	"math"
	"time"

	"github.com/ktagirov/nastroenie/internal/model"
)

// GenerateDailyReport computes today's summary and appends it to the report
// store. Statistics cover the durable day store merged with the unflushed
// buffer, de-duplicated by message ID, so records flushed earlier in the day
// still count. Returns nil without writing when there are no records today.
func (e *Engine) GenerateDailyReport() (*model.DailyReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	date := now.Format("2006-01-02")

	stored, err := e.store.ReadDay(date)
	if err != nil {
		e.logger.Error("failed to read day store for report", "date", date, "error", err)
		stored = nil
	}

	seen := make(map[int]bool, len(stored))
	records := make([]model.MessageRecord, 0, len(stored)+len(e.buffer))
	for _, record := range stored {
		seen[record.MessageID] = true
		records = append(records, record)
	}
	for _, record := range e.buffer {
		if record.Day() != date || seen[record.MessageID] {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		e.logger.Info("no messages today, skipping daily report", "date", date)
		return nil, nil
	}

	report := BuildReport(date, now, records)

	if err := e.store.AppendReport(date, report); err != nil {
		return nil, err
	}

	e.logger.Info("daily report generated",
		"date", date,
		"total_messages", report.TotalMessages,
		"average_sentiment", report.AverageSentiment,
		"outliers", report.OutliersCount)

	return &report, nil
}

// BuildReport computes the summary statistics for one day's records.
func BuildReport(date string, generatedAt time.Time, records []model.MessageRecord) model.DailyReport {
	report := model.DailyReport{
		Date:          date,
		GeneratedAt:   generatedAt,
		TotalMessages: len(records),
	}

	var sum float64
	for i, record := range records {
		score := record.SentimentScore
		sum += score

		if i == 0 || score > report.TopPositive {
			report.TopPositive = score
		}
		if i == 0 || score < report.TopNegative {
			report.TopNegative = score
		}

		if record.IsOutlier {
			report.OutliersCount++
		}

		switch {
		case score >= 6.5:
			report.Distribution.Positive++
		case score <= 3.5:
			report.Distribution.Negative++
		default:
			report.Distribution.Neutral++
		}
	}

	report.AverageSentiment = math.Round(sum/float64(len(records))*100) / 100

	return report
}
