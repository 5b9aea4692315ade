package classifier

import (
	"context"

	"github.com/ktagirov/nastroenie/internal/model"
)

// stubClient answers every prediction with a fully neutral distribution.
// Useful for dry runs of the ingestion pipeline without a model backend.
type stubClient struct{}

func newStubClient() Client {
	return stubClient{}
}

func (stubClient) Predict(_ context.Context, _ string) (model.ProbabilityVector, error) {
	return model.ProbabilityVector{Neutral: 1.0}, nil
}
