// Package classifier adapts external sentiment models behind a small
// interface and wraps them with preprocessing, normalization, and the
// fail-open policy.
package classifier

import (
	"context"

	"github.com/ktagirov/nastroenie/internal/model"
)

// Client is the adapter over an external pretrained classifier. Predict
// returns class probabilities for exactly three fixed classes in the order
// negative, neutral, positive. The model itself is a black box.
type Client interface {
	Predict(ctx context.Context, text string) (model.ProbabilityVector, error)
}

// Warmer is implemented by clients whose backing model must be loaded before
// first use.
type Warmer interface {
	Warmup(ctx context.Context) error
}

// Config holds configuration for classifier clients.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
