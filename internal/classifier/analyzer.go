package classifier

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ktagirov/nastroenie/internal/common"
	"github.com/ktagirov/nastroenie/internal/model"
	"github.com/ktagirov/nastroenie/internal/sentiment"
)

// maxWorkers bounds concurrent inference calls so a slow prediction never
// stalls ingestion of the next message.
const maxWorkers = 4

// Analyzer scores chat messages: it preprocesses text, runs the classifier
// adapter on a bounded worker pool, and normalizes the resulting
// probabilities onto the 1-10 scale. Classification failures fail open to
// the neutral result so one malformed message never halts ingestion.
type Analyzer struct {
	client     Client
	normalizer *sentiment.Normalizer
	logger     *slog.Logger
	sem        chan struct{}
	retryOpts  common.RetryOptions
}

// NewAnalyzer creates an analyzer around the given classifier client.
func NewAnalyzer(client Client, normalizer *sentiment.Normalizer, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		client:     client,
		normalizer: normalizer,
		logger:     logger,
		sem:        make(chan struct{}, maxWorkers),
		retryOpts: common.RetryOptions{
			MaxAttempts:  5,
			InitialDelay: 2 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Analyze returns the sentiment result for text. It never returns an error:
// empty input bypasses the classifier entirely and failures map to the
// neutral fallback.
func (a *Analyzer) Analyze(ctx context.Context, text string) model.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return sentiment.NeutralResult()
	}

	processed := sentiment.PreprocessText(text)

	select {
	case a.sem <- struct{}{}:
		defer func() { <-a.sem }()
	case <-ctx.Done():
		return sentiment.NeutralResult()
	}

	probs, err := a.client.Predict(ctx, processed)
	if err != nil {
		a.logger.Warn("classification failed, falling back to neutral", "error", err)
		return sentiment.NeutralResult()
	}

	return a.normalizer.Normalize(probs)
}

// Warmup loads the backing model if the client supports it, retrying while
// the remote side reports the model container is still starting. Per-message
// predictions are never retried.
func (a *Analyzer) Warmup(ctx context.Context) error {
	warmer, ok := a.client.(Warmer)
	if !ok {
		return nil
	}

	return common.WithRetry(ctx, func() error {
		if err := warmer.Warmup(ctx); err != nil {
			return &common.RetryableError{Err: err, Retryable: common.IsRetryable(err)}
		}
		return nil
	}, a.retryOpts)
}
