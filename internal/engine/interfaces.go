package engine

import (
	"context"

	"github.com/ktagirov/nastroenie/internal/model"
)

// Analyzer scores message text. Implementations never return an error; they
// fail open to the neutral result.
type Analyzer interface {
	Analyze(ctx context.Context, text string) model.SentimentResult
}

// Store defines the contract for the durable JSON stores.
type Store interface {
	AppendRecords(date string, records []model.MessageRecord) error
	AppendOutlier(month string, record model.MessageRecord) error
	AppendReport(date string, report model.DailyReport) error
	ReadDay(date string) ([]model.MessageRecord, error)
}
