package model

// Label classifies a normalized sentiment score.
type Label string

// Sentiment labels assigned from the final 1-10 score.
const (
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
	LabelPositive Label = "POSITIVE"
)

// ProbabilityVector holds the classifier's probabilities for the three fixed
// sentiment classes. The values are assumed to sum to roughly 1.0; this is
// not enforced.
type ProbabilityVector struct {
	Negative float64
	Neutral  float64
	Positive float64
}

// Polarity returns the positive probability minus the negative probability,
// in [-1, 1].
func (p ProbabilityVector) Polarity() float64 {
	return p.Positive - p.Negative
}

// Confidence returns the maximum class probability.
func (p ProbabilityVector) Confidence() float64 {
	confidence := p.Negative
	if p.Neutral > confidence {
		confidence = p.Neutral
	}
	if p.Positive > confidence {
		confidence = p.Positive
	}
	return confidence
}

// SentimentResult is the normalized outcome for one message: a score on the
// 1-10 scale rounded to one decimal, and the label derived from it.
type SentimentResult struct {
	Score float64
	Label Label
}

// Category returns a human-readable banding of the score for log output.
func (r SentimentResult) Category() string {
	switch {
	case r.Score <= 2.0:
		return "Very Negative"
	case r.Score <= 4.0:
		return "Negative"
	case r.Score <= 6.0:
		return "Neutral"
	case r.Score <= 8.0:
		return "Positive"
	default:
		return "Very Positive"
	}
}
