// Package sentiment implements the score normalization and outlier detection
// core: a deterministic mapping from three-class probabilities onto a 1-10
// scale with confidence-weighted banding.
package sentiment

import (
	"math"
	"math/rand"

	"github.com/ktagirov/nastroenie/internal/model"
)

// Scale bounds for normalized scores.
const (
	ScaleMin = 1.0
	ScaleMax = 10.0
)

// Label cut points applied to the final score.
const (
	negativeCutoff = 3.5
	positiveCutoff = 6.5
)

// jitterRange is the half-width of the uniform display-granularity jitter.
const jitterRange = 0.05

// Normalizer converts classifier probability vectors into 1-10 sentiment
// results. The jitter source is injectable so tests can pin it to zero.
type Normalizer struct {
	jitter func() float64
}

// NewNormalizer creates a normalizer with a seeded uniform jitter source.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		jitter: func() float64 {
			return (rand.Float64()*2 - 1) * jitterRange
		},
	}
}

// NewNormalizerWithJitter creates a normalizer with a custom jitter source.
func NewNormalizerWithJitter(jitter func() float64) *Normalizer {
	return &Normalizer{jitter: jitter}
}

// Normalize maps a probability vector onto the 1-10 scale.
//
// Polarity selects the band (negative below -0.1, positive above 0.1,
// neutral between) and confidence selects the sub-band within it. The base
// score is clamped, jittered, clamped again, and rounded to one decimal;
// the label comes from the final score.
func (n *Normalizer) Normalize(probs model.ProbabilityVector) model.SentimentResult {
	polarity := probs.Polarity()
	confidence := probs.Confidence()

	var base float64
	switch {
	case polarity < -0.1:
		switch {
		case confidence > 0.9:
			base = 1.0 + (polarity+1)*1.5 // 1.0-2.5
		case confidence > 0.7:
			base = 1.5 + (polarity+1)*1.5 // 1.5-3.0
		default:
			base = 2.5 + (polarity+1)*1.0 // 2.5-3.5
		}
	case polarity > 0.1:
		switch {
		case confidence > 0.9:
			base = 8.5 + polarity*1.5 // 8.5-10.0
		case confidence > 0.7:
			base = 7.0 + polarity*1.5 // 7.0-8.5
		default:
			base = 6.5 + polarity*0.5 // 6.5-7.0
		}
	default:
		base = 5.0 + polarity*0.8
		if confidence > 0.8 {
			base = 5.0
		} else {
			base += (0.5 - confidence) * 0.6
		}
	}

	score := clamp(base)
	score = clamp(score + n.jitter())
	score = math.Round(score*10) / 10

	return model.SentimentResult{
		Score: score,
		Label: LabelForScore(score),
	}
}

// LabelForScore applies the fixed label cut points to a final score. The cut
// points are independent of the configurable outlier thresholds.
func LabelForScore(score float64) model.Label {
	switch {
	case score <= negativeCutoff:
		return model.LabelNegative
	case score >= positiveCutoff:
		return model.LabelPositive
	default:
		return model.LabelNeutral
	}
}

// NeutralResult is the fixed fallback for empty input and classifier
// failures.
func NeutralResult() model.SentimentResult {
	return model.SentimentResult{Score: 5.0, Label: model.LabelNeutral}
}

func clamp(score float64) float64 {
	return math.Max(ScaleMin, math.Min(ScaleMax, score))
}
